package handler

import "encoding/json"

// jsonField records whether a key was present in the request body. An explicit
// null counts as present with an empty value, so it fails emptiness checks
// rather than existence checks.
type jsonField struct {
	set   bool
	value string
}

func (f *jsonField) UnmarshalJSON(data []byte) error {
	f.set = true
	if string(data) == "null" {
		f.value = ""
		return nil
	}
	return json.Unmarshal(data, &f.value)
}

// ptr adapts the field to the validation engine: nil means absent.
func (f jsonField) ptr() *string {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}

func (f jsonField) String() string {
	return f.value
}
