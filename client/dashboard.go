package client

import (
	"context"

	"github.com/healthsecure/medichain-service/model"
	"github.com/sourcegraph/conc/pool"
)

// DashboardData bundles everything a dashboard renders on first paint.
type DashboardData struct {
	Profile model.ProfileResponse
	Stats   model.DashboardStats
	Records []model.MedicalRecord
	Access  []model.AccessRequest
}

// FetchDashboard loads profile, stats, records and access grants
// concurrently. The first error cancels the rest.
func (c *Client) FetchDashboard(ctx context.Context) (data DashboardData, err error) {
	conc := pool.New().WithContext(ctx)
	conc.Go(func(ctx context.Context) error {
		data.Profile, err = c.GetProfile(ctx)
		return err
	})
	conc.Go(func(ctx context.Context) error {
		data.Stats, err = c.GetDashboardStats(ctx)
		return err
	})
	conc.Go(func(ctx context.Context) error {
		data.Records, err = c.ListRecords(ctx)
		return err
	})
	conc.Go(func(ctx context.Context) error {
		data.Access, err = c.ListAccessRequests(ctx)
		return err
	})
	if err = conc.Wait(); err != nil {
		return DashboardData{}, err
	}

	return data, nil
}
