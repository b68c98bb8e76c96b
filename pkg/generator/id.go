package generator

import (
	"fmt"
	"math/rand/v2"
)

// HealthID generates a patient health identifier of the form HID-XXXX-YYYY.
func HealthID() string {
	return prefixedID("HID")
}

// DoctorID generates a doctor identifier of the form DOC-XXXX-YYYY.
func DoctorID() string {
	return prefixedID("DOC")
}

func prefixedID(prefix string) string {
	return fmt.Sprintf("%s-%04d-%04d", prefix, rand.IntN(10000), rand.IntN(10000))
}
