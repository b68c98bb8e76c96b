package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/healthsecure/medichain-service/model"
)

// Login authenticates with email and password. On success the token pair and
// the user projection are stored in the session.
func (c *Client) Login(ctx context.Context, email, password string) (model.LoginResponse, error) {
	var res model.LoginResponse
	err := c.post(ctx, "/auth/login/", model.LoginRequest{Email: email, Password: password}, &res)
	if err != nil {
		return model.LoginResponse{}, err
	}

	c.session.SetTokens(res.Access, res.Refresh)
	c.session.SetUser(User{
		Email:      res.Email,
		Role:       res.Role,
		Name:       res.Name,
		HealthID:   res.HealthID,
		DoctorID:   res.DoctorID,
		IsVerified: res.IsVerified,
	})
	return res, nil
}

// Logout revokes the server-side session, then drops the local one. The
// local session is cleared even when the revoke call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.post(ctx, "/auth/token/revoke/", nil, nil)
	c.session.Clear()
	if errors.Is(err, ErrSessionExpired) {
		return nil
	}
	return err
}

func (c *Client) RegisterPatient(ctx context.Context, req model.RegisterPatientRequest) (model.RegisterPatientResponse, error) {
	var res model.RegisterPatientResponse
	if err := c.post(ctx, "/auth/register/patient/", req, &res); err != nil {
		return model.RegisterPatientResponse{}, err
	}
	return res, nil
}

func (c *Client) RegisterDoctor(ctx context.Context, req model.RegisterDoctorRequest) (model.RegisterDoctorResponse, error) {
	var res model.RegisterDoctorResponse
	if err := c.post(ctx, "/auth/register/doctor/", req, &res); err != nil {
		return model.RegisterDoctorResponse{}, err
	}
	return res, nil
}

// GetProfile fetches the caller's profile, a tagged union discriminated by
// role.
func (c *Client) GetProfile(ctx context.Context) (model.ProfileResponse, error) {
	var res model.ProfileResponse
	if err := c.get(ctx, "/auth/profile/", &res); err != nil {
		return model.ProfileResponse{}, err
	}
	return res, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) (model.ProfileResponse, error) {
	var res model.ProfileResponse
	if err := c.put(ctx, "/auth/profile/", req, &res); err != nil {
		return model.ProfileResponse{}, err
	}
	return res, nil
}

func (c *Client) GetDashboardStats(ctx context.Context) (model.DashboardStats, error) {
	var res model.DashboardStats
	if err := c.get(ctx, "/auth/stats/", &res); err != nil {
		return model.DashboardStats{}, err
	}
	return res, nil
}

// SearchPatient looks a patient up by health ID. A 404 is reported as
// ErrPatientNotFound.
func (c *Client) SearchPatient(ctx context.Context, healthID string) (model.PatientSummary, error) {
	var res model.PatientSummary
	err := c.get(ctx, "/auth/patients/"+healthID+"/", &res)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return model.PatientSummary{}, ErrPatientNotFound
		}
		return model.PatientSummary{}, err
	}
	return res, nil
}

func (c *Client) ListRecords(ctx context.Context) ([]model.MedicalRecord, error) {
	var res []model.MedicalRecord
	if err := c.get(ctx, "/records/", &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) GetRecord(ctx context.Context, recordID int64) (model.MedicalRecord, error) {
	var res model.MedicalRecord
	if err := c.get(ctx, fmt.Sprintf("/records/%d/", recordID), &res); err != nil {
		return model.MedicalRecord{}, err
	}
	return res, nil
}

func (c *Client) CreateRecord(ctx context.Context, req model.CreateRecordRequest) (model.MedicalRecord, error) {
	var res model.MedicalRecord
	if err := c.post(ctx, "/records/", req, &res); err != nil {
		return model.MedicalRecord{}, err
	}
	return res, nil
}

func (c *Client) ToggleRecordVisibility(ctx context.Context, recordID int64) (model.ToggleVisibilityResponse, error) {
	var res model.ToggleVisibilityResponse
	if err := c.patch(ctx, fmt.Sprintf("/records/%d/visibility/", recordID), nil, &res); err != nil {
		return model.ToggleVisibilityResponse{}, err
	}
	return res, nil
}

// GetPatientRecords fetches another patient's visible records; the caller
// must be a doctor with an approved access grant.
func (c *Client) GetPatientRecords(ctx context.Context, healthID string) (model.PatientRecordsResponse, error) {
	var res model.PatientRecordsResponse
	err := c.get(ctx, "/patients/"+healthID+"/records/", &res)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return model.PatientRecordsResponse{}, ErrPatientNotFound
		}
		return model.PatientRecordsResponse{}, err
	}
	return res, nil
}

// ExportRecords downloads the caller's records as CSV.
func (c *Client) ExportRecords(ctx context.Context) ([]byte, error) {
	res, err := c.fetchWithAuth(ctx, http.MethodGet, "/records/export/", nil, nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if err = c.checkResponse(res); err != nil {
		return nil, err
	}
	return io.ReadAll(res.Body)
}

func (c *Client) ListAccessRequests(ctx context.Context) ([]model.AccessRequest, error) {
	var res []model.AccessRequest
	if err := c.get(ctx, "/auth/access/", &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) GrantAccess(ctx context.Context, req model.CreateAccessRequest) (model.AccessRequest, error) {
	var res model.AccessRequest
	if err := c.post(ctx, "/auth/access/", req, &res); err != nil {
		return model.AccessRequest{}, err
	}
	return res, nil
}

func (c *Client) RevokeAccess(ctx context.Context, accessID int64) (model.RevokeAccessResponse, error) {
	var res model.RevokeAccessResponse
	if err := c.post(ctx, fmt.Sprintf("/auth/access/%d/revoke/", accessID), nil, &res); err != nil {
		return model.RevokeAccessResponse{}, err
	}
	return res, nil
}
