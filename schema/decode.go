package schema

import (
	"github.com/go-viper/mapstructure/v2"
)

// Decode maps raw section data onto dst, matching keys against json tags.
// Input is weakly typed so the string values a router hands back for path
// and query parts coerce into numeric and bool fields. Embedded structs are
// squashed to keep key paths flat, mirroring encoding/json.
func Decode(raw, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Squash:           true,
		Result:           dst,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
