package validation

// Kind classifies a checker failure against the error taxonomy. Plain
// content misses (a package absent from the manifest) carry no kind.
type Kind string

const (
	// KindMissingPath marks a failed existence check.
	KindMissingPath Kind = "missing-path"
	// KindParse marks malformed JSON in a notebook.
	KindParse Kind = "parse"
	// KindStructure marks valid JSON missing an expected key.
	KindStructure Kind = "structure"
	// KindIO marks an unreadable file.
	KindIO Kind = "io"
)

// ItemStatus is the outcome of a single checked item.
type ItemStatus string

const (
	ItemOK   ItemStatus = "ok"
	ItemFail ItemStatus = "fail"
	ItemWarn ItemStatus = "warn"
)

// Item is one line of checker output.
type Item struct {
	Status ItemStatus `json:"status"`
	Label  string     `json:"label"`
	Detail string     `json:"detail,omitempty"`
}

// Result reports the outcome of a single checker.
type Result struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Passed bool   `json:"passed"`
	Kind   Kind   `json:"kind,omitempty"`
	Items  []Item `json:"items"`
}

func okItem(label string) Item {
	return Item{Status: ItemOK, Label: label}
}

func failItem(label, detail string) Item {
	return Item{Status: ItemFail, Label: label, Detail: detail}
}

func warnItem(label string) Item {
	return Item{Status: ItemWarn, Label: label}
}
