package vendors

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightdesk/freightdesk/internal/shared"
)

type memoryRepo struct {
	byID   map[int64]*Vendor
	nextID int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: make(map[int64]*Vendor)}
}

func (r *memoryRepo) Create(ctx context.Context, v Vendor) (*Vendor, error) {
	for _, existing := range r.byID {
		if existing.Name == v.Name {
			return nil, ErrAlreadyExists
		}
	}
	r.nextID++
	v.ID = r.nextID
	v.CreatedAt = time.Now()
	v.UpdatedAt = time.Now()
	stored := v
	r.byID[v.ID] = &stored
	return &v, nil
}

func (r *memoryRepo) Get(ctx context.Context, id int64) (*Vendor, error) {
	v, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *memoryRepo) List(ctx context.Context, req ListVendorsRequest) ([]Vendor, int, error) {
	var out []Vendor
	for _, v := range r.byID {
		if req.Search != "" && !matches(v, req.Search) {
			continue
		}
		out = append(out, *v)
	}
	return out, len(out), nil
}

func matches(v *Vendor, search string) bool {
	s := strings.ToLower(search)
	if strings.Contains(strings.ToLower(v.Name), s) {
		return true
	}
	for _, e := range v.Emails {
		if strings.Contains(strings.ToLower(e), s) {
			return true
		}
	}
	for _, p := range v.Phones {
		if strings.Contains(strings.ToLower(p), s) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(v.TaxRegistration), s)
}

func (r *memoryRepo) Update(ctx context.Context, v Vendor) (*Vendor, error) {
	if _, ok := r.byID[v.ID]; !ok {
		return nil, ErrNotFound
	}
	v.UpdatedAt = time.Now()
	stored := v
	r.byID[v.ID] = &stored
	return &v, nil
}

func (r *memoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func validCreateRequest() CreateVendorRequest {
	return CreateVendorRequest{
		Name:            "Falcon Shipping Line",
		ContactPerson:   "S. Kannan",
		Emails:          []string{"bookings@falconline.test"},
		Phones:          []string{"+971-4-1111111"},
		Address:         "Port Rashid",
		Country:         "AE",
		TaxRegistration: "TRN300000000000009",
		Services:        "Ocean freight, feeder services",
		PaymentTerms:    "30 days",
	}
}

func TestCreateVendor(t *testing.T) {
	svc := NewService(newMemoryRepo())

	created, err := svc.Create(context.Background(), validCreateRequest(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(9), created.CreatedBy)
	assert.Equal(t, "Ocean freight, feeder services", created.Services)
}

func TestCreateVendorDuplicateName(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest(), 1)
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreateRequest(), 1)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestUpdateVendorPartial(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest(), 1)
	require.NoError(t, err)

	newName := "Falcon Shipping DMCC"
	newTerms := "45 days"
	updated, err := svc.Update(ctx, created.ID, UpdateVendorRequest{
		Name:         &newName,
		PaymentTerms: &newTerms,
	})
	require.NoError(t, err)
	assert.Equal(t, "Falcon Shipping DMCC", updated.Name)
	assert.Equal(t, "45 days", updated.PaymentTerms)
	// Untouched fields survive the partial update.
	assert.Equal(t, "TRN300000000000009", updated.TaxRegistration)
	assert.Equal(t, []string{"bookings@falconline.test"}, updated.Emails)
}

func TestUpdateMissingVendor(t *testing.T) {
	svc := NewService(newMemoryRepo())

	name := "Ghost"
	_, err := svc.Update(context.Background(), 404, UpdateVendorRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteVendor(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest(), 1)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListVendorsSearch(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest(), 1)
	require.NoError(t, err)

	other := validCreateRequest()
	other.Name = "Oasis Transport"
	other.Emails = []string{"dispatch@oasistrans.test"}
	other.TaxRegistration = "TRN400000000000001"
	_, err = svc.Create(ctx, other, 1)
	require.NoError(t, err)

	items, total, err := svc.List(ctx, ListVendorsRequest{Search: "oasis"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Oasis Transport", items[0].Name)

	// Search hits emails and tax registration too.
	items, _, err = svc.List(ctx, ListVendorsRequest{Search: "falconline.test"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Falcon Shipping Line", items[0].Name)
}

func TestVendorValidationRequiresContact(t *testing.T) {
	req := validCreateRequest()
	req.Emails = nil
	assert.Error(t, shared.Validate(req))

	req = validCreateRequest()
	req.Phones = []string{}
	assert.Error(t, shared.Validate(req))

	req = validCreateRequest()
	req.Name = ""
	assert.Error(t, shared.Validate(req))

	assert.NoError(t, shared.Validate(validCreateRequest()))
}
