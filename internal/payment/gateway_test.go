package payment_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proptoken/proptoken-backend/internal/domain"
	"github.com/proptoken/proptoken-backend/internal/logger"
	"github.com/proptoken/proptoken-backend/internal/mocks"
	"github.com/proptoken/proptoken-backend/internal/payment"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestSimulator_Charge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Sleep(gomock.Any(), 500*time.Millisecond).Return(nil)
	clock.EXPECT().Now().Return(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	gw := payment.NewSimulator(500*time.Millisecond, clock)

	ref, err := gw.Charge(context.Background(), payment.Charge{
		SaleID:         "sale-1",
		BuyerAccountID: "0.0.2002",
		Amount:         decimal.NewFromInt(5000),
		Currency:       "USD",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "SIM-"))
	assert.Len(t, ref, len("SIM-")+26)
}

func TestSimulator_ChargeRejectsNonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := payment.NewSimulator(time.Second, mocks.NewMockClock(ctrl))

	_, err := gw.Charge(context.Background(), payment.Charge{Amount: decimal.Zero})
	var validation *domain.ValidationError
	assert.True(t, errors.As(err, &validation))
}

func TestSimulator_ChargeInterrupted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Sleep(gomock.Any(), time.Second).Return(context.Canceled)

	gw := payment.NewSimulator(time.Second, clock)

	_, err := gw.Charge(context.Background(), payment.Charge{Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, context.Canceled)
}
