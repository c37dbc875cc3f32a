package property_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/ipfs"
	"github.com/proptoken/proptoken-backend/internal/logger"
	"github.com/proptoken/proptoken-backend/internal/mocks"
	"github.com/proptoken/proptoken-backend/internal/property"
	"github.com/proptoken/proptoken-backend/internal/store"
	"github.com/proptoken/proptoken-backend/internal/store/schema"
	"github.com/proptoken/proptoken-backend/internal/store/storetest"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fixture struct {
	store     store.Store
	content   *mocks.MockContentStore
	publisher *mocks.MockPublisher
	svc       property.Service
	// pinned holds the last metadata document passed to UploadJSON, as bytes
	pinned []byte
}

func setup(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	f := &fixture{
		store:     storetest.New(t),
		content:   mocks.NewMockContentStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}
	f.svc = property.NewService(f.store, f.content, f.publisher, clock, adapter.NewJSON(), property.Defaults{})
	return f
}

// expectPin records the pinned metadata document and returns cid for it
func (f *fixture) expectPin(t *testing.T, cid string) {
	f.content.EXPECT().
		UploadJSON(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string, v interface{}) (*ipfs.UploadResult, error) {
			data, err := adapter.NewJSON().Marshal(v)
			require.NoError(t, err)
			f.pinned = data
			return &ipfs.UploadResult{CID: cid, Name: name, MimeType: "application/json", Size: int64(len(data))}, nil
		})
}

func hashOf(t *testing.T, doc []byte) string {
	canonical, err := adapter.NewJSON().Canonical(doc)
	require.NoError(t, err)
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}

func validRequest() property.CreateRequest {
	return property.CreateRequest{
		ID:          "P1",
		Title:       "Harbour Loft",
		Address:     "1 Quay Street",
		Valuation:   decimal.NewFromInt(1_200_000),
		TotalSupply: 10_000,
	}
}

func TestCreate_PinsMediaAndMetadata(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	req := validRequest()
	req.Files = []ipfs.File{
		{Name: "front.png", Data: []byte("png-bytes")},
		{Name: "deed.pdf", Data: []byte("pdf-bytes")},
	}

	f.content.EXPECT().UploadMany(gomock.Any(), req.Files).Return([]*ipfs.UploadResult{
		{CID: "bafyfront", Name: "front.png", MimeType: "image/png", Size: 9},
		{CID: "bafydeed", Name: "deed.pdf", MimeType: "application/pdf", Size: 9},
	}, nil)
	f.expectPin(t, "bafymeta")
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	created, err := f.svc.Create(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "bafymeta", created.MetadataCID)
	assert.Equal(t, hashOf(t, f.pinned), created.ContentHash)
	assert.True(t, decimal.NewFromInt(100).Equal(created.PricePerToken))
	assert.Equal(t, "USD", created.Currency)
	require.Len(t, created.Media, 2)
	assert.Equal(t, "bafyfront", created.Media[0].CID)
	assert.Equal(t, "bafydeed", created.Media[1].CID)

	var doc property.Metadata
	require.NoError(t, adapter.NewJSON().Unmarshal(f.pinned, &doc))
	assert.Equal(t, "P1", doc.PropertyID)
	assert.Equal(t, "1200000", doc.Valuation)
	assert.Equal(t, int64(10_000), doc.TotalSupply)
	assert.Equal(t, "2024-05-01T12:00:00Z", doc.UpdatedAt)

	stored, err := f.svc.Get(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, created.ContentHash, stored.ContentHash)
	assert.Len(t, stored.Media, 2)
}

func TestCreate_AssignsID(t *testing.T) {
	f := setup(t)

	req := validRequest()
	req.ID = ""
	f.expectPin(t, "bafymeta")
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	created, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, created.ID, 36)
	assert.Empty(t, created.Media)
}

func TestCreate_Validation(t *testing.T) {
	zero := decimal.Zero

	tests := []struct {
		name   string
		mutate func(*property.CreateRequest)
		field  string
	}{
		{"missing title", func(r *property.CreateRequest) { r.Title = " " }, "title"},
		{"missing address", func(r *property.CreateRequest) { r.Address = "" }, "address"},
		{"zero valuation", func(r *property.CreateRequest) { r.Valuation = decimal.Zero }, "valuation"},
		{"zero supply", func(r *property.CreateRequest) { r.TotalSupply = 0 }, "totalSupply"},
		{"zero price", func(r *property.CreateRequest) { r.PricePerToken = &zero }, "pricePerToken"},
		{"bad currency", func(r *property.CreateRequest) { r.Currency = "dollars" }, "currency"},
		{"empty file", func(r *property.CreateRequest) { r.Files = []ipfs.File{{Name: "a.png"}} }, "files[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			req := validRequest()
			tt.mutate(&req)

			_, err := f.svc.Create(context.Background(), req)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestCreate_DuplicateID(t *testing.T) {
	f := setup(t)
	f.expectPin(t, "bafymeta")
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	// no uploads for the second attempt
	_, err = f.svc.Create(context.Background(), validRequest())
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestCreate_UploadFailure(t *testing.T) {
	f := setup(t)
	req := validRequest()
	req.Files = []ipfs.File{{Name: "front.png", Data: []byte("x")}}

	f.content.EXPECT().UploadMany(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewUpstreamError("ipfs", "upload", errors.New("401")))

	_, err := f.svc.Create(context.Background(), req)
	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)

	_, err = f.svc.Get(context.Background(), "P1")
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestVerify(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.expectPin(t, "bafymeta")
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	pin := ipfs.PinStatus{CID: "bafymeta", Pinned: true, Accessible: true}

	t.Run("matching document", func(t *testing.T) {
		f.content.EXPECT().VerifyPin(gomock.Any(), "bafymeta").Return(pin)
		// surrounding whitespace does not change the canonical form
		padded := []byte("  " + string(f.pinned) + "\n")
		f.content.EXPECT().Retrieve(gomock.Any(), "bafymeta").Return(padded, nil)

		v, err := f.svc.Verify(ctx, "P1")
		require.NoError(t, err)
		assert.True(t, v.Valid)
		assert.Equal(t, v.StoredHash, v.ComputedHash)
		assert.True(t, v.Pin.Pinned)
	})

	t.Run("tampered document", func(t *testing.T) {
		f.content.EXPECT().VerifyPin(gomock.Any(), "bafymeta").Return(pin)
		f.content.EXPECT().Retrieve(gomock.Any(), "bafymeta").Return([]byte(`{"title":"forged"}`), nil)

		v, err := f.svc.Verify(ctx, "P1")
		require.NoError(t, err)
		assert.False(t, v.Valid)
		assert.NotEqual(t, v.StoredHash, v.ComputedHash)
	})

	t.Run("unreachable document", func(t *testing.T) {
		f.content.EXPECT().VerifyPin(gomock.Any(), "bafymeta").Return(ipfs.PinStatus{CID: "bafymeta"})
		f.content.EXPECT().Retrieve(gomock.Any(), "bafymeta").Return(nil, errors.New("all gateways failed"))

		v, err := f.svc.Verify(ctx, "P1")
		require.NoError(t, err)
		assert.False(t, v.Valid)
		assert.Contains(t, v.Error, "all gateways failed")
	})
}

func TestRevise(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.expectPin(t, "bafymeta1")
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	created, err := f.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	title := "Harbour Loft (renovated)"
	valuation := decimal.NewFromInt(1_500_000)
	files := []ipfs.File{{Name: "kitchen.jpg", Data: []byte("jpg")}}

	f.content.EXPECT().UploadMany(gomock.Any(), files).Return([]*ipfs.UploadResult{
		{CID: "bafykitchen", Name: "kitchen.jpg", MimeType: "image/jpeg", Size: 3},
	}, nil)
	f.expectPin(t, "bafymeta2")

	revised, err := f.svc.Revise(ctx, "P1", property.ReviseRequest{
		Title:     &title,
		Valuation: &valuation,
		Files:     files,
	})
	require.NoError(t, err)
	assert.Equal(t, title, revised.Title)
	assert.Equal(t, "bafymeta2", revised.MetadataCID)
	assert.NotEqual(t, created.ContentHash, revised.ContentHash)
	assert.Equal(t, hashOf(t, f.pinned), revised.ContentHash)
	require.Len(t, revised.Media, 1)
	assert.Equal(t, "bafykitchen", revised.Media[0].CID)
	assert.Equal(t, "1 Quay Street", revised.Address)

	empty := ""
	_, err = f.svc.Revise(ctx, "P1", property.ReviseRequest{Address: &empty})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = f.svc.Revise(ctx, "missing", property.ReviseRequest{Title: &title})
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestList(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for _, id := range []string{"P1", "P2", "P3"} {
		f.expectPin(t, "bafy"+id)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
		req := validRequest()
		req.ID = id
		_, err := f.svc.Create(ctx, req)
		require.NoError(t, err)
	}

	page, err := f.svc.List(ctx, property.Filter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.Limit)
	assert.Len(t, page.Items, 2)

	page, err = f.svc.List(ctx, property.Filter{Offset: 2, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, page.Limit)
	assert.Len(t, page.Items, 1)

	tokenized := true
	page, err = f.svc.List(ctx, property.Filter{Tokenized: &tokenized})
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)
}

func TestListSales(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.expectPin(t, "bafymeta")
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	for i, status := range []domain.SaleStatus{domain.SaleStatusPending, domain.SaleStatusFailed} {
		require.NoError(t, f.store.CreateSale(ctx, &schema.Sale{
			ID:             []string{"S1", "S2"}[i],
			PropertyID:     "P1",
			TokenID:        "0.0.7001",
			BuyerAccountID: "0.0.4242",
			Quantity:       1,
			PricePerToken:  decimal.NewFromInt(100),
			TotalPrice:     decimal.NewFromInt(100),
			Currency:       "USD",
			Status:         status,
		}))
	}

	page, err := f.svc.ListSales(ctx, "P1", property.SaleFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	page, err = f.svc.ListSales(ctx, "P1", property.SaleFilter{Status: domain.SaleStatusFailed})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "S2", page.Items[0].ID)

	_, err = f.svc.ListSales(ctx, "nope", property.SaleFilter{})
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestCreate_CanonicalEncodingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()
	codec := mocks.NewMockJSON(ctrl)
	codec.EXPECT().Canonical(gomock.Any()).Return(nil, errors.New("unsupported value"))

	st := storetest.New(t)
	// nothing is pinned or stored when the document cannot be hashed
	svc := property.NewService(st, mocks.NewMockContentStore(ctrl), mocks.NewMockPublisher(ctrl), clock, codec, property.Defaults{})

	_, err := svc.Create(context.Background(), property.CreateRequest{
		ID:          "P9",
		Title:       "Mill House",
		Address:     "9 Weir Lane",
		Valuation:   decimal.NewFromInt(300_000),
		TotalSupply: 3_000,
	})
	require.Error(t, err)

	p, err := st.GetProperty(context.Background(), "P9")
	require.NoError(t, err)
	assert.Nil(t, p)
}
