package entity

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillingEntry is one sales transaction recorded against a doctor. Entries live
// in the owning user's billing namespace.
type BillingEntry struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	DoctorID           string             `bson:"doctorId,omitempty" json:"doctorId,omitempty"`
	DoctorName         string             `bson:"doctorName" json:"doctorName"`
	DoctorDegree       string             `bson:"doctorDegree" json:"doctorDegree"`
	DoctorLocation     string             `bson:"doctorLocation" json:"doctorLocation"`
	SampleUnits        float64            `bson:"sampleUnits" json:"sampleUnits"`
	TotalOrderAmount   float64            `bson:"totalOrderAmount" json:"totalOrderAmount"`
	DiscountPercentage float64            `bson:"discountPercentage" json:"discountPercentage"`
	NetAmount          float64            `bson:"netAmount" json:"netAmount"`

	// Mirrors kept for older clients
	TotalAmount float64 `bson:"totalAmount" json:"totalAmount"`
	AmountToPay float64 `bson:"amountToPay" json:"amountToPay"`
	MRAmount    float64 `bson:"mrAmount" json:"mrAmount"`

	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// HasDoctorIdentity reports whether both name and degree are non-blank
func (e *BillingEntry) HasDoctorIdentity() bool {
	return strings.TrimSpace(e.DoctorName) != "" && strings.TrimSpace(e.DoctorDegree) != ""
}

// BillingPatch lists the stored fields an update may touch. Nil means untouched.
type BillingPatch struct {
	DoctorName         *string
	DoctorDegree       *string
	DoctorLocation     *string
	SampleUnits        *float64
	TotalOrderAmount   *float64
	DiscountPercentage *float64
	NetAmount          *float64
	TotalAmount        *float64
	AmountToPay        *float64
	MRAmount           *float64
}

// IsEmpty reports whether the patch changes nothing
func (p *BillingPatch) IsEmpty() bool {
	return p.DoctorName == nil && p.DoctorDegree == nil && p.DoctorLocation == nil &&
		p.SampleUnits == nil && p.TotalOrderAmount == nil && p.DiscountPercentage == nil &&
		p.NetAmount == nil && p.TotalAmount == nil && p.AmountToPay == nil && p.MRAmount == nil
}

// ApplyTo copies the set fields onto e
func (p *BillingPatch) ApplyTo(e *BillingEntry) {
	if p.DoctorName != nil {
		e.DoctorName = *p.DoctorName
	}
	if p.DoctorDegree != nil {
		e.DoctorDegree = *p.DoctorDegree
	}
	if p.DoctorLocation != nil {
		e.DoctorLocation = *p.DoctorLocation
	}
	if p.SampleUnits != nil {
		e.SampleUnits = *p.SampleUnits
	}
	if p.TotalOrderAmount != nil {
		e.TotalOrderAmount = *p.TotalOrderAmount
	}
	if p.DiscountPercentage != nil {
		e.DiscountPercentage = *p.DiscountPercentage
	}
	if p.NetAmount != nil {
		e.NetAmount = *p.NetAmount
	}
	if p.TotalAmount != nil {
		e.TotalAmount = *p.TotalAmount
	}
	if p.AmountToPay != nil {
		e.AmountToPay = *p.AmountToPay
	}
	if p.MRAmount != nil {
		e.MRAmount = *p.MRAmount
	}
}
