package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/pkg/pagination"
)

// In-memory repository fakes shared by the service tests. They simulate just
// enough store behaviour for the services to run end to end.

type mockDraftRepo struct {
	drafts map[uuid.UUID]*entity.DocumentDraft
	items  *mockDraftItemRepo
}

func newMockDraftRepo(items *mockDraftItemRepo) *mockDraftRepo {
	return &mockDraftRepo{drafts: make(map[uuid.UUID]*entity.DocumentDraft), items: items}
}

func (m *mockDraftRepo) Create(ctx context.Context, draft *entity.DocumentDraft) error {
	if draft.ID == uuid.Nil {
		draft.ID = uuid.New()
	}
	copied := *draft
	m.drafts[draft.ID] = &copied
	return nil
}

func (m *mockDraftRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentDraft, error) {
	draft, ok := m.drafts[id]
	if !ok {
		return nil, nil
	}
	copied := *draft
	return &copied, nil
}

func (m *mockDraftRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.DocumentDraft, error) {
	draft, err := m.GetByID(ctx, id)
	if draft == nil || err != nil {
		return draft, err
	}
	if m.items != nil {
		rows, _ := m.items.GetByDraftID(ctx, id)
		draft.Items = rows
	}
	return draft, nil
}

func (m *mockDraftRepo) Update(ctx context.Context, draft *entity.DocumentDraft) error {
	copied := *draft
	copied.Items = nil
	m.drafts[draft.ID] = &copied
	return nil
}

func (m *mockDraftRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.drafts, id)
	return nil
}

func (m *mockDraftRepo) ListByUser(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.DocumentDraft, int64, error) {
	var out []entity.DocumentDraft
	for _, draft := range m.drafts {
		if draft.UserID == userID {
			out = append(out, *draft)
		}
	}
	return out, int64(len(out)), nil
}

type mockDraftItemRepo struct {
	rows map[uuid.UUID]*entity.DocumentDraftItem
}

func newMockDraftItemRepo() *mockDraftItemRepo {
	return &mockDraftItemRepo{rows: make(map[uuid.UUID]*entity.DocumentDraftItem)}
}

func (m *mockDraftItemRepo) Create(ctx context.Context, item *entity.DocumentDraftItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	copied := *item
	m.rows[item.ID] = &copied
	return nil
}

func (m *mockDraftItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentDraftItem, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (m *mockDraftItemRepo) GetByDraftID(ctx context.Context, draftID uuid.UUID) ([]entity.DocumentDraftItem, error) {
	var out []entity.DocumentDraftItem
	for _, row := range m.rows {
		if row.DraftID == draftID {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (m *mockDraftItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.rows, id)
	return nil
}

func (m *mockDraftItemRepo) NextPosition(ctx context.Context, draftID uuid.UUID) (int, error) {
	next := 0
	for _, row := range m.rows {
		if row.DraftID == draftID && row.Position >= next {
			next = row.Position + 1
		}
	}
	return next, nil
}

type mockDocumentRepo struct {
	documents map[uuid.UUID]*entity.Document
	items     *mockDocumentItemRepo
}

func newMockDocumentRepo(items *mockDocumentItemRepo) *mockDocumentRepo {
	return &mockDocumentRepo{documents: make(map[uuid.UUID]*entity.Document), items: items}
}

func (m *mockDocumentRepo) Create(ctx context.Context, document *entity.Document) error {
	if document.ID == uuid.Nil {
		document.ID = uuid.New()
	}
	copied := *document
	m.documents[document.ID] = &copied
	return nil
}

func (m *mockDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	document, ok := m.documents[id]
	if !ok {
		return nil, nil
	}
	copied := *document
	return &copied, nil
}

func (m *mockDocumentRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	document, err := m.GetByID(ctx, id)
	if document == nil || err != nil {
		return document, err
	}
	if m.items != nil {
		rows, _ := m.items.GetByDocumentID(ctx, id)
		document.Items = rows
	}
	return document, nil
}

func (m *mockDocumentRepo) List(ctx context.Context, userID uuid.UUID, params *repository.DocumentFilterParams) ([]entity.Document, int64, error) {
	var out []entity.Document
	for _, document := range m.documents {
		if document.UserID == userID {
			out = append(out, *document)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockDocumentRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error {
	if document, ok := m.documents[id]; ok {
		document.PaymentStatus = status
	}
	return nil
}

func (m *mockDocumentRepo) CountByKind(ctx context.Context, userID uuid.UUID, kind enum.DocumentKind) (int64, error) {
	var count int64
	for _, document := range m.documents {
		if document.UserID == userID && document.Kind == kind {
			count++
		}
	}
	return count, nil
}

type mockDocumentItemRepo struct {
	rows []entity.DocumentItem
}

func newMockDocumentItemRepo() *mockDocumentItemRepo {
	return &mockDocumentItemRepo{}
}

func (m *mockDocumentItemRepo) CreateBatch(ctx context.Context, items []entity.DocumentItem) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	m.rows = append(m.rows, items...)
	return nil
}

func (m *mockDocumentItemRepo) GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentItem, error) {
	var out []entity.DocumentItem
	for _, row := range m.rows {
		if row.DocumentID == documentID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

type mockProfileRepo struct {
	profiles map[uuid.UUID]*entity.BusinessProfile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[uuid.UUID]*entity.BusinessProfile)}
}

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.BusinessProfile, error) {
	profile, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *entity.BusinessProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	copied := *profile
	m.profiles[profile.UserID] = &copied
	return nil
}

func (m *mockProfileRepo) Update(ctx context.Context, profile *entity.BusinessProfile) error {
	copied := *profile
	m.profiles[profile.UserID] = &copied
	return nil
}

type mockVisitDraftRepo struct {
	drafts map[uuid.UUID]*entity.VisitDraft
}

func newMockVisitDraftRepo() *mockVisitDraftRepo {
	return &mockVisitDraftRepo{drafts: make(map[uuid.UUID]*entity.VisitDraft)}
}

func (m *mockVisitDraftRepo) Create(ctx context.Context, draft *entity.VisitDraft) error {
	if draft.ID == uuid.Nil {
		draft.ID = uuid.New()
	}
	copied := *draft
	m.drafts[draft.ID] = &copied
	return nil
}

func (m *mockVisitDraftRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.VisitDraft, error) {
	draft, ok := m.drafts[id]
	if !ok {
		return nil, nil
	}
	copied := *draft
	return &copied, nil
}

func (m *mockVisitDraftRepo) Update(ctx context.Context, draft *entity.VisitDraft) error {
	copied := *draft
	m.drafts[draft.ID] = &copied
	return nil
}

func (m *mockVisitDraftRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.drafts, id)
	return nil
}

type mockVisitRequestRepo struct {
	requests map[uuid.UUID]*entity.VisitRequest
}

func newMockVisitRequestRepo() *mockVisitRequestRepo {
	return &mockVisitRequestRepo{requests: make(map[uuid.UUID]*entity.VisitRequest)}
}

func (m *mockVisitRequestRepo) Create(ctx context.Context, request *entity.VisitRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	copied := *request
	m.requests[request.ID] = &copied
	return nil
}

func (m *mockVisitRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error) {
	request, ok := m.requests[id]
	if !ok {
		return nil, nil
	}
	copied := *request
	return &copied, nil
}

func (m *mockVisitRequestRepo) ListByPremise(ctx context.Context, premiseID uuid.UUID, params *repository.VisitFilterParams) ([]entity.VisitRequest, int64, error) {
	var out []entity.VisitRequest
	for _, request := range m.requests {
		if request.PremiseID == premiseID {
			out = append(out, *request)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockVisitRequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.VisitStatus) error {
	if request, ok := m.requests[id]; ok {
		request.Status = status
	}
	return nil
}

type mockPremiseRepo struct {
	premises map[uuid.UUID]*entity.Premise
	tenants  *mockTenantRepo
}

func newMockPremiseRepo(tenants *mockTenantRepo) *mockPremiseRepo {
	return &mockPremiseRepo{premises: make(map[uuid.UUID]*entity.Premise), tenants: tenants}
}

func (m *mockPremiseRepo) Create(ctx context.Context, premise *entity.Premise) error {
	if premise.ID == uuid.Nil {
		premise.ID = uuid.New()
	}
	copied := *premise
	m.premises[premise.ID] = &copied
	return nil
}

func (m *mockPremiseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Premise, error) {
	premise, ok := m.premises[id]
	if !ok {
		return nil, nil
	}
	copied := *premise
	return &copied, nil
}

func (m *mockPremiseRepo) GetWithTenants(ctx context.Context, id uuid.UUID) (*entity.Premise, error) {
	premise, err := m.GetByID(ctx, id)
	if premise == nil || err != nil {
		return premise, err
	}
	if m.tenants != nil {
		rows, _ := m.tenants.ListByPremise(ctx, id, "")
		premise.Tenants = rows
	}
	return premise, nil
}

func (m *mockPremiseRepo) Update(ctx context.Context, premise *entity.Premise) error {
	copied := *premise
	m.premises[premise.ID] = &copied
	return nil
}

func (m *mockPremiseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.premises, id)
	return nil
}

func (m *mockPremiseRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Premise, int64, error) {
	var out []entity.Premise
	for _, premise := range m.premises {
		out = append(out, *premise)
	}
	return out, int64(len(out)), nil
}

type mockTenantRepo struct {
	tenants map[uuid.UUID]*entity.DirectoryTenant
}

func newMockTenantRepo() *mockTenantRepo {
	return &mockTenantRepo{tenants: make(map[uuid.UUID]*entity.DirectoryTenant)}
}

func (m *mockTenantRepo) Create(ctx context.Context, tenant *entity.DirectoryTenant) error {
	if tenant.ID == uuid.Nil {
		tenant.ID = uuid.New()
	}
	copied := *tenant
	m.tenants[tenant.ID] = &copied
	return nil
}

func (m *mockTenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DirectoryTenant, error) {
	tenant, ok := m.tenants[id]
	if !ok {
		return nil, nil
	}
	copied := *tenant
	return &copied, nil
}

func (m *mockTenantRepo) Update(ctx context.Context, tenant *entity.DirectoryTenant) error {
	copied := *tenant
	m.tenants[tenant.ID] = &copied
	return nil
}

func (m *mockTenantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.tenants, id)
	return nil
}

func (m *mockTenantRepo) ListByPremise(ctx context.Context, premiseID uuid.UUID, search string) ([]entity.DirectoryTenant, error) {
	var out []entity.DirectoryTenant
	for _, tenant := range m.tenants {
		if tenant.PremiseID != premiseID {
			continue
		}
		if search != "" {
			q := strings.ToLower(search)
			matched := strings.Contains(strings.ToLower(tenant.Name), q)
			if !matched && tenant.Service != nil {
				matched = strings.Contains(strings.ToLower(*tenant.Service), q)
			}
			if !matched {
				continue
			}
		}
		out = append(out, *tenant)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type mockListingRepo struct {
	listings map[uuid.UUID]*entity.Listing
}

func newMockListingRepo() *mockListingRepo {
	return &mockListingRepo{listings: make(map[uuid.UUID]*entity.Listing)}
}

func (m *mockListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	copied := *listing
	copied.Images = append(entity.ImageList{}, listing.Images...)
	m.listings[listing.ID] = &copied
	return nil
}

func (m *mockListingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, ok := m.listings[id]
	if !ok {
		return nil, nil
	}
	copied := *listing
	copied.Images = append(entity.ImageList{}, listing.Images...)
	return &copied, nil
}

func (m *mockListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	copied := *listing
	copied.Images = append(entity.ImageList{}, listing.Images...)
	m.listings[listing.ID] = &copied
	return nil
}

func (m *mockListingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.listings, id)
	return nil
}

func (m *mockListingRepo) List(ctx context.Context, params *repository.ListingFilterParams) ([]entity.Listing, int64, error) {
	var out []entity.Listing
	for _, listing := range m.listings {
		out = append(out, *listing)
	}
	return out, int64(len(out)), nil
}

type mockOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
	items  *mockOrderItemRepo
}

func newMockOrderRepo(items *mockOrderItemRepo) *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[uuid.UUID]*entity.Order), items: items}
}

func (m *mockOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	copied := *order
	m.orders[order.ID] = &copied
	return nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (m *mockOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := m.GetByID(ctx, id)
	if order == nil || err != nil {
		return order, err
	}
	if m.items != nil {
		rows, _ := m.items.GetByOrderID(ctx, id)
		order.Items = rows
	}
	return order, nil
}

func (m *mockOrderRepo) List(ctx context.Context, vendorID uuid.UUID, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, order := range m.orders {
		if order.VendorID == vendorID {
			out = append(out, *order)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if order, ok := m.orders[id]; ok {
		order.Status = status
	}
	return nil
}

func (m *mockOrderRepo) CountByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64
	for _, order := range m.orders {
		if order.VendorID == vendorID {
			count++
		}
	}
	return count, nil
}

type mockOrderItemRepo struct {
	rows []entity.OrderItem
}

func newMockOrderItemRepo() *mockOrderItemRepo {
	return &mockOrderItemRepo{}
}

func (m *mockOrderItemRepo) CreateBatch(ctx context.Context, items []entity.OrderItem) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	m.rows = append(m.rows, items...)
	return nil
}

func (m *mockOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	var out []entity.OrderItem
	for _, row := range m.rows {
		if row.OrderID == orderID {
			out = append(out, row)
		}
	}
	return out, nil
}
