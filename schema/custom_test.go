package schema_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Gobd/reqgate/schema"
)

type redeemRequest struct {
	Coupon string
}

func (r redeemRequest) Validate() error {
	return schema.ValidateStruct(r.Rules())
}

func (r redeemRequest) Rules() (any, []*schema.FieldRules) {
	return &r, []*schema.FieldRules{
		schema.Field(&r.Coupon,
			schema.Required,
			schema.Custom(
				func(v any) error {
					s, _ := v.(string)
					if !strings.HasPrefix(s, "CPN-") {
						return fmt.Errorf("must start with CPN-")
					}
					return nil
				},
				"coupon code format",
			),
		),
	}
}

func TestCustom(t *testing.T) {
	if err := (redeemRequest{Coupon: "CPN-41"}).Validate(); err != nil {
		t.Fatal("unexpected error:", err)
	}

	err := redeemRequest{Coupon: "41"}.Validate()
	if err == nil {
		t.Fatal("should have returned error")
	}
	if err.Error() != "Coupon: must start with CPN-." {
		t.Error("wrong error:", err.Error())
	}
}
