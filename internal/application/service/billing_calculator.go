package service

import (
	"strings"
	"time"

	"github.com/sangkips/medrep-crm/internal/domain/entity"
	"github.com/sangkips/medrep-crm/pkg/apperror"
	"github.com/sangkips/medrep-crm/pkg/numeric"
	"github.com/shopspring/decimal"
)

// Validation messages for billing input
const (
	msgDoctorNameRequired     = "Doctor name is required."
	msgDoctorDegreeRequired   = "Doctor degree is required."
	msgDoctorLocationRequired = "Doctor location is required."
	msgSampleUnitsInvalid     = "Sample units must be a valid number greater than 0."
	msgTotalOrderInvalid      = "Total order amount must be a valid number greater than 0."
	msgDiscountInvalid        = "Discount percentage must be a valid number (0 or greater)."
	msgNetAmountInvalid       = "Net amount must be a valid number."
	msgNetAmountNegative      = "Net amount cannot be negative."
	msgTotalAmountInvalid     = "Total amount must be a valid number."
	msgAmountToPayInvalid     = "Amount to pay must be a valid number."
	msgMRAmountInvalid        = "MR amount must be a valid number."
)

// BillingInput carries a billing submission as the client sent it.
// Nil fields were not supplied.
type BillingInput struct {
	DoctorID           *string
	DoctorName         *string
	DoctorDegree       *string
	DoctorLocation     *string
	SampleUnits        *numeric.Field
	TotalOrderAmount   *numeric.Field
	DiscountPercentage *numeric.Field
	NetAmount          *numeric.Field
	TotalAmount        *numeric.Field
	AmountToPay        *numeric.Field
	MRAmount           *numeric.Field
}

// NetAmount returns total minus discount percent of total
func NetAmount(total, discountPercentage float64) float64 {
	t := decimal.NewFromFloat(total)
	discount := t.Mul(decimal.NewFromFloat(discountPercentage)).Div(decimal.NewFromInt(100))
	return t.Sub(discount).InexactFloat64()
}

// ValidateAndNormalize checks a new billing submission and builds the entry to
// store. Rules run in a fixed order and the first failure is returned.
func ValidateAndNormalize(input *BillingInput, now time.Time) (*entity.BillingEntry, error) {
	name, err := requiredText("doctorName", input.DoctorName, msgDoctorNameRequired)
	if err != nil {
		return nil, err
	}
	degree, err := requiredText("doctorDegree", input.DoctorDegree, msgDoctorDegreeRequired)
	if err != nil {
		return nil, err
	}
	location, err := requiredText("doctorLocation", input.DoctorLocation, msgDoctorLocationRequired)
	if err != nil {
		return nil, err
	}

	sampleUnits, ok := parse(input.SampleUnits)
	if !ok || sampleUnits <= 0 {
		return nil, apperror.NewFieldError("sampleUnits", msgSampleUnitsInvalid)
	}
	total, ok := parse(input.TotalOrderAmount)
	if !ok || total <= 0 {
		return nil, apperror.NewFieldError("totalOrderAmount", msgTotalOrderInvalid)
	}
	discount, ok := parse(input.DiscountPercentage)
	if !ok || discount < 0 {
		return nil, apperror.NewFieldError("discountPercentage", msgDiscountInvalid)
	}

	net := NetAmount(total, discount)
	if supplied(input.NetAmount) {
		v, ok := input.NetAmount.Float()
		if !ok {
			return nil, apperror.NewFieldError("netAmount", msgNetAmountInvalid)
		}
		net = v
	}
	if net < 0 {
		return nil, apperror.NewFieldError("netAmount", msgNetAmountNegative)
	}

	totalAmount, err := mirror("totalAmount", input.TotalAmount, total, msgTotalAmountInvalid)
	if err != nil {
		return nil, err
	}
	amountToPay, err := mirror("amountToPay", input.AmountToPay, net, msgAmountToPayInvalid)
	if err != nil {
		return nil, err
	}
	mrAmount, err := mirror("mrAmount", input.MRAmount,
		decimal.NewFromFloat(total).Sub(decimal.NewFromFloat(net)).InexactFloat64(), msgMRAmountInvalid)
	if err != nil {
		return nil, err
	}

	entry := &entity.BillingEntry{
		DoctorName:         name,
		DoctorDegree:       degree,
		DoctorLocation:     location,
		SampleUnits:        sampleUnits,
		TotalOrderAmount:   total,
		DiscountPercentage: discount,
		NetAmount:          net,
		TotalAmount:        totalAmount,
		AmountToPay:        amountToPay,
		MRAmount:           mrAmount,
		Timestamp:          now,
	}
	if input.DoctorID != nil {
		entry.DoctorID = strings.TrimSpace(*input.DoctorID)
	}
	return entry, nil
}

// ValidatePatch checks only the fields present in input and converts them into
// a patch. Net amount is taken as given and never recomputed.
func ValidatePatch(input *BillingInput) (*entity.BillingPatch, error) {
	patch := &entity.BillingPatch{}

	texts := []struct {
		field string
		value *string
		msg   string
		dst   **string
	}{
		{"doctorName", input.DoctorName, msgDoctorNameRequired, &patch.DoctorName},
		{"doctorDegree", input.DoctorDegree, msgDoctorDegreeRequired, &patch.DoctorDegree},
		{"doctorLocation", input.DoctorLocation, msgDoctorLocationRequired, &patch.DoctorLocation},
	}
	for _, t := range texts {
		if t.value == nil {
			continue
		}
		v, err := requiredText(t.field, t.value, t.msg)
		if err != nil {
			return nil, err
		}
		*t.dst = &v
	}

	numbers := []struct {
		field string
		value *numeric.Field
		valid func(float64) bool
		msg   string
		dst   **float64
	}{
		{"sampleUnits", input.SampleUnits, positive, msgSampleUnitsInvalid, &patch.SampleUnits},
		{"totalOrderAmount", input.TotalOrderAmount, positive, msgTotalOrderInvalid, &patch.TotalOrderAmount},
		{"discountPercentage", input.DiscountPercentage, nonNegative, msgDiscountInvalid, &patch.DiscountPercentage},
		{"netAmount", input.NetAmount, anyNumber, msgNetAmountInvalid, &patch.NetAmount},
		{"totalAmount", input.TotalAmount, anyNumber, msgTotalAmountInvalid, &patch.TotalAmount},
		{"amountToPay", input.AmountToPay, anyNumber, msgAmountToPayInvalid, &patch.AmountToPay},
		{"mrAmount", input.MRAmount, anyNumber, msgMRAmountInvalid, &patch.MRAmount},
	}
	for _, n := range numbers {
		if n.value == nil {
			continue
		}
		v, ok := n.value.Float()
		if !ok || !n.valid(v) {
			return nil, apperror.NewFieldError(n.field, n.msg)
		}
		*n.dst = &v
	}

	if patch.NetAmount != nil && *patch.NetAmount < 0 {
		return nil, apperror.NewFieldError("netAmount", msgNetAmountNegative)
	}

	return patch, nil
}

func requiredText(field string, value *string, msg string) (string, error) {
	if value == nil {
		return "", apperror.NewFieldError(field, msg)
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return "", apperror.NewFieldError(field, msg)
	}
	return v, nil
}

func parse(f *numeric.Field) (float64, bool) {
	if f == nil {
		return 0, false
	}
	return f.Float()
}

// supplied treats a blank value the same as an absent one
func supplied(f *numeric.Field) bool {
	return f != nil && strings.TrimSpace(f.Raw()) != ""
}

// mirror returns the supplied value, or fallback when the field is absent or blank
func mirror(field string, f *numeric.Field, fallback float64, msg string) (float64, error) {
	if !supplied(f) {
		return fallback, nil
	}
	v, ok := parse(f)
	if !ok {
		return 0, apperror.NewFieldError(field, msg)
	}
	return v, nil
}

func positive(v float64) bool    { return v > 0 }
func nonNegative(v float64) bool { return v >= 0 }
func anyNumber(float64) bool     { return true }
