package gateway

import (
	"context"
	"encoding/json"

	"emy-orders/internal/domain/user"
	"emy-orders/internal/usecase/queries"
)

// DirectoryStore covers the customer directory actions, including the
// credential checks. Passwords pass through verbatim; the collaborator
// owns the credential policy.
type DirectoryStore struct {
	caller Caller
}

func NewDirectoryStore(caller Caller) *DirectoryStore {
	return &DirectoryStore{caller: caller}
}

func (d *DirectoryStore) Customers(ctx context.Context) ([]queries.CustomerView, error) {
	data, _, err := d.caller.Call(ctx, "getUsers", nil)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []queries.CustomerView{}, nil
	}
	var records []userRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, wrapErr(KindBadResponse, "invalid user records", err)
	}
	views := make([]queries.CustomerView, 0, len(records))
	for _, r := range records {
		views = append(views, queries.CustomerView{
			ID:        string(r.ID),
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Phone:     string(r.Phone),
		})
	}
	return views, nil
}

// Each login action expects its own credential key names, so the
// payloads are built per action rather than shared.
func (d *DirectoryStore) CheckCustomerLogin(ctx context.Context, username, password string) (*user.Profile, error) {
	return d.checkLogin(ctx, "checkUserLogin", map[string]string{
		"user": username,
		"pass": password,
	})
}

func (d *DirectoryStore) CheckStaffLogin(ctx context.Context, username, password string) (*user.Profile, error) {
	return d.checkLogin(ctx, "checkAdminLogin", map[string]string{
		"adminUser": username,
		"adminPass": password,
	})
}

func (d *DirectoryStore) checkLogin(ctx context.Context, action string, payload map[string]string) (*user.Profile, error) {
	data, _, err := d.caller.Call(ctx, action, payload)
	if err != nil {
		return nil, err
	}
	var record userRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, wrapErr(KindBadResponse, "invalid login response", err)
	}
	if record.ID == "" {
		return nil, wrapErr(KindBadResponse, "login response without user id", nil)
	}
	return &user.Profile{
		ID:        string(record.ID),
		FirstName: record.FirstName,
		LastName:  record.LastName,
		Phone:     string(record.Phone),
	}, nil
}
