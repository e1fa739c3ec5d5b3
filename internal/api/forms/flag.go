package forms

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Flag is a yes/no form field that remembers whether it was submitted.
// It binds from checkbox values ("y", "on", "true", ...) and from JSON
// booleans or strings.
type Flag struct {
	Set   bool
	Value bool
}

func NewFlag(v bool) Flag {
	return Flag{Set: true, Value: v}
}

// Or returns the submitted value, or def when the field was absent.
func (f Flag) Or(def bool) bool {
	if !f.Set {
		return def
	}
	return f.Value
}

// UnmarshalParam is used by gin's form binding.
func (f *Flag) UnmarshalParam(param string) error {
	return f.parse(param)
}

func (f *Flag) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*f = Flag{}
		return nil
	case bool:
		*f = NewFlag(v)
		return nil
	case float64:
		return f.parse(fmt.Sprint(v))
	case string:
		return f.parse(v)
	default:
		return fmt.Errorf("invalid yes/no value %s", string(b))
	}
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

func (f *Flag) parse(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		*f = Flag{}
	case "y", "yes", "on", "true", "1":
		*f = NewFlag(true)
	case "n", "no", "off", "false", "0":
		*f = NewFlag(false)
	default:
		return fmt.Errorf("invalid yes/no value %q", s)
	}
	return nil
}
