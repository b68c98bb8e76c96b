package model_test

import (
	"encoding/json"
	"testing"

	"github.com/healthsecure/medichain-service/model"
	"github.com/healthsecure/medichain-service/pkg/profile"
	"github.com/healthsecure/medichain-service/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestProfileResponseTaggedUnion(t *testing.T) {
	t.Parallel()

	patient := model.ProfileResponse{
		Role: profile.Patient,
		Patient: &model.PatientProfile{
			HealthID:  "HID-1234-5678",
			FirstName: "Jane",
			LastName:  "Doe",
			Age:       util.Pointer(int32(34)),
			Email:     "jane@example.com",
		},
	}

	data, err := json.Marshal(patient)
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &envelope))
	require.Contains(t, envelope, "role")
	require.Contains(t, envelope, "profile")

	var decoded model.ProfileResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, profile.Patient, decoded.Role)
	require.NotNil(t, decoded.Patient)
	require.Nil(t, decoded.Doctor)
	require.Equal(t, "HID-1234-5678", decoded.Patient.HealthID)
}

func TestProfileResponseDoctorArm(t *testing.T) {
	t.Parallel()

	raw := `{
		"role": "DOCTOR",
		"profile": {
			"doctor_id": "DOC-1234-5678",
			"first_name": "John",
			"last_name": "Smith",
			"medical_license": "ML-99",
			"specialization": "Cardiology",
			"hospital": "General Hospital",
			"is_verified": true
		}
	}`

	var decoded model.ProfileResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	require.Equal(t, profile.Doctor, decoded.Role)
	require.NotNil(t, decoded.Doctor)
	require.Nil(t, decoded.Patient)
	require.True(t, decoded.Doctor.IsVerified)
	require.Equal(t, "DOC-1234-5678", decoded.Doctor.DoctorID)
}

func TestProfileResponseUnknownRole(t *testing.T) {
	t.Parallel()

	var decoded model.ProfileResponse
	err := json.Unmarshal([]byte(`{"role":"ROBOT","profile":{}}`), &decoded)
	require.Error(t, err)

	_, err = json.Marshal(model.ProfileResponse{Role: "ROBOT"})
	require.Error(t, err)
}

func TestFieldErrorsMessage(t *testing.T) {
	t.Parallel()

	err := model.FieldErrors{
		"email":    {"A user with this email already exists."},
		"password": {"Too short."},
	}
	require.Equal(t, "email: A user with this email already exists., password: Too short.", err.Error())
}
