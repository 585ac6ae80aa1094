package models

// StateDocument is the free-form working memory of an intent: a JSON
// object tree of scalars, sequences and mappings.
type StateDocument = map[string]any

// MergeState applies a top-level shallow merge: keys in patch replace
// keys in current, unreferenced keys are preserved, nested values are
// replaced wholesale. Neither input is mutated.
func MergeState(current, patch StateDocument) StateDocument {
	merged := make(StateDocument, len(current)+len(patch))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}
