package conf

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode maps a parsed tree onto target, which must be a pointer to a
// struct. Fields are matched through `conf` tags, falling back to the
// lowercased field name. Leaf strings are converted to the field's type
// where a sensible conversion exists ("3000" into an int field, "true"
// into a bool field).
//
// Example:
//
//	type Config struct {
//	    Endpoint string `conf:"endpoint"`
//	    Debug    bool   `conf:"debug"`
//	    Log      struct {
//	        File string `conf:"file"`
//	    } `conf:"log"`
//	}
func Decode(root Node, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "conf",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}

	return decoder.Decode(root.ToMap())
}
