package transit

// Line is the directory record for one metro or bus line.
type Line struct {
	CanonicalKey string `json:"canonical_key" bson:"canonicalkey"`

	Kind SegmentKind `json:"kind" bson:"kind"`

	// Names maps language code to the display name of the line.
	Names map[string]string `json:"names" bson:"names"`

	// Terminals maps language code to the long-form end-of-route station
	// names, one per direction.
	Terminals map[string][]string `json:"terminals" bson:"terminals"`
}
