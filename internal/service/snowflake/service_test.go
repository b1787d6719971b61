package snowflake

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-snowflake/internal/domain"
	"go-snowflake/internal/errs"
	"go-snowflake/internal/pkg/logger"
	eventmocks "go-snowflake/internal/service/event/mocks"
	recountermocks "go-snowflake/internal/service/recounter/mocks"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

type serviceFixture struct {
	svc      Service
	store    *recountermocks.MockService
	events   *eventmocks.MockService
	clock    *fakeClock
	recorder *memRecorder
}

func newServiceFixture(t *testing.T) serviceFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := recountermocks.NewMockService(ctrl)
	events := eventmocks.NewMockService(ctrl)
	clock := newFakeClock(testNow)
	recorder := &memRecorder{}
	store.EXPECT().Bump(gomock.Any(), int64(1), int64(3)).Return(int64(2), nil)
	gen, err := NewGenerator(context.Background(), Config{
		DatacenterID:           1,
		MachineID:              3,
		StartTimestamp:         DefaultStartTimestamp,
		ClockBackwardThreshold: DefaultClockBackwardThreshold,
	}, store, recorder, logger.NewNopLogger(), WithClock(clock.Now), WithSleep(clock.Sleep))
	require.NoError(t, err)
	return serviceFixture{
		svc:      NewService(gen, store, events),
		store:    store,
		events:   events,
		clock:    clock,
		recorder: recorder,
	}
}

func TestService_GenerateID(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	res, err := f.svc.GenerateID(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, int64(testNow), res.Timestamp)
	assert.Equal(t, int64(1), res.DatacenterID)
	assert.Equal(t, int64(3), res.MachineID)
	assert.Equal(t, int64(2), res.Recount)
	assert.Equal(t, int64(6), res.BusinessID)
	assert.NotZero(t, res.ID)

	parsed, err := f.svc.ParseID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, res, parsed)
}

func TestService_GenerateIDs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		count   int
		wantLen int
		wantErr error
	}{
		{name: "正常", count: 3, wantLen: 3},
		{name: "最大值", count: MaxBatchCount, wantLen: MaxBatchCount},
		{name: "超过最大值", count: MaxBatchCount + 1, wantErr: errs.ErrInvalidParameter},
		{name: "零", count: 0, wantErr: errs.ErrInvalidParameter},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newServiceFixture(t)
			res, err := f.svc.GenerateIDs(context.Background(), 1, tc.count)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, res, tc.wantLen)
			for i, id := range res {
				assert.Equal(t, int64(i), id.Sequence)
			}
		})
	}
}

func TestService_ParseID(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	_, err := f.svc.ParseID(context.Background(), 1<<63)
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)

	res, err := f.svc.ParseID(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, domain.SnowflakeID{Timestamp: DefaultStartTimestamp}, res)
}

func TestService_RecounterAndEvents(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	ctx := context.Background()
	want := domain.Recounter{DatacenterID: 1, MachineID: 3, Recount: 2}
	f.store.EXPECT().Get(gomock.Any(), int64(1), int64(3)).Return(want, nil)
	got, err := f.svc.Recounter(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	events := []domain.Event{{ID: 1, DatacenterID: 1, MachineID: 3, Type: domain.EventTypeServiceStart}}
	f.events.EXPECT().List(gomock.Any(), int64(1), int64(3), 10).Return(events, nil)
	gotEvents, err := f.svc.Events(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, events, gotEvents)
}

func TestMetricsService(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	registry := prometheus.NewRegistry()
	svc := NewMetricsService(f.svc, registry)
	ctx := context.Background()

	_, err := svc.GenerateID(ctx, 1)
	require.NoError(t, err)
	_, err = svc.GenerateIDs(ctx, 1, 5)
	require.NoError(t, err)
	_, err = svc.GenerateIDs(ctx, 1, MaxBatchCount+1)
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(svc.idCounter.WithLabelValues("GenerateID", statusSuccess)))
	assert.Equal(t, float64(5), testutil.ToFloat64(svc.idCounter.WithLabelValues("GenerateIDs", statusSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.idCounter.WithLabelValues("GenerateIDs", statusFailed)))
}

func TestTracingService(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t)
	sr := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	svc := NewTracingService(f.svc, provider)
	ctx := context.Background()

	_, err := svc.GenerateID(ctx, 2)
	require.NoError(t, err)
	_, err = svc.GenerateIDs(ctx, 2, 0)
	require.Error(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "SnowflakeService.GenerateID", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, "SnowflakeService.GenerateIDs", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
