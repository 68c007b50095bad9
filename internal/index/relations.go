package index

// Relation is a directed edge between two document ids, derived from a
// document's references list.
type Relation struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
	Type string `yaml:"type" json:"type"`
}

// Relation types recognized by the convention. Only RelationUses is
// produced today; the others are reserved.
const (
	RelationUses       = "uses"
	RelationDepends    = "depends"
	RelationSupersedes = "supersedes"
)

// Relations returns one uses-edge per reference entry across the whole
// index, ordered by document key. The target is the raw reference string
// and is deliberately not resolved: task references may name a task by its
// bare directory name rather than its spec's composite key.
func (ix *Index) Relations() []Relation {
	var rels []Relation
	for _, key := range ix.Keys() {
		doc, _ := ix.Get(key)
		for _, ref := range doc.References {
			rels = append(rels, Relation{From: key, To: ref, Type: RelationUses})
		}
	}
	return rels
}
