package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ataxihosur/dispatch/internal/pkg/errs"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
	"github.com/ataxihosur/dispatch/services/location"
	"github.com/ataxihosur/dispatch/services/location/mocks"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.Tracking.ReportInterval = 60
	cfg.Tracking.MinMoveMeters = 25
	cfg.Tracking.MinReportSeconds = 60
	return cfg
}

// fakeSource is a scripted PositionSource for tracking session tests.
type fakeSource struct {
	mu     sync.Mutex
	fix    models.PositionFix
	fixErr error
	watch  chan models.PositionFix
}

func newFakeSource(lat, lng float64) *fakeSource {
	return &fakeSource{
		fix:   models.PositionFix{Latitude: lat, Longitude: lng, Timestamp: time.Now()},
		watch: make(chan models.PositionFix, 8),
	}
}

func (f *fakeSource) Fix(ctx context.Context) (*models.PositionFix, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fixErr != nil {
		return nil, f.fixErr
	}
	fix := f.fix
	return &fix, nil
}

func (f *fakeSource) Watch(ctx context.Context) (<-chan models.PositionFix, error) {
	return f.watch, nil
}

func TestStartTracking_InitialFixFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	src := newFakeSource(12.9716, 77.5946)
	src.fixErr = errors.New("no gps signal")

	session, err := uc.StartTracking(context.Background(), "driver-1", src)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrLocationUnavailable))
	assert.Nil(t, session)
}

func TestStartTracking_StoresInitialPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	var stored *models.LivePosition
	mockRepo.EXPECT().
		UpsertPosition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pos *models.LivePosition) error {
			stored = pos
			return nil
		})
	mockGW.EXPECT().PublishLocationUpdate(gomock.Any()).Return(nil)

	src := newFakeSource(12.9716, 77.5946)
	session, err := uc.StartTracking(context.Background(), "driver-1", src)

	require.NoError(t, err)
	require.NotNil(t, session)
	require.NotNil(t, stored)
	assert.Equal(t, "driver-1", stored.DriverID)
	assert.Equal(t, 12.9716, stored.Latitude)
	assert.NotEmpty(t, stored.Geohash)

	uc.StopTracking(session)
}

func TestTracking_ListenerEmitsOnMovement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	reported := make(chan *models.LivePosition, 8)
	mockRepo.EXPECT().
		UpsertPosition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pos *models.LivePosition) error {
			reported <- pos
			return nil
		}).AnyTimes()
	mockGW.EXPECT().PublishLocationUpdate(gomock.Any()).Return(nil).AnyTimes()

	src := newFakeSource(12.9716, 77.5946)
	session, err := uc.StartTracking(context.Background(), "driver-1", src)
	require.NoError(t, err)
	<-reported // initial report

	// ~1.1km north, well past the movement threshold.
	src.watch <- models.PositionFix{Latitude: 12.9816, Longitude: 77.5946, Timestamp: time.Now()}

	select {
	case pos := <-reported:
		assert.Equal(t, 12.9816, pos.Latitude)
	case <-time.After(2 * time.Second):
		t.Fatal("listener emission did not reach the repository")
	}

	uc.StopTracking(session)
}

func TestTracking_ListenerSuppressesSmallMoves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	// Exactly one report is allowed: the initial fix. A jitter-level move
	// inside both thresholds must not reach the repository.
	mockRepo.EXPECT().UpsertPosition(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	mockGW.EXPECT().PublishLocationUpdate(gomock.Any()).Return(nil).Times(1)

	src := newFakeSource(12.9716, 77.5946)
	session, err := uc.StartTracking(context.Background(), "driver-1", src)
	require.NoError(t, err)

	// ~1m shift.
	src.watch <- models.PositionFix{Latitude: 12.971609, Longitude: 77.5946, Timestamp: time.Now()}
	time.Sleep(100 * time.Millisecond)

	uc.StopTracking(session)
}

func TestTracking_TimerResamplesWhenListenerQuiet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Tracking.ReportInterval = 1

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(cfg, mockRepo, mockGW)

	reported := make(chan *models.LivePosition, 8)
	mockRepo.EXPECT().
		UpsertPosition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pos *models.LivePosition) error {
			reported <- pos
			return nil
		}).AnyTimes()
	mockGW.EXPECT().PublishLocationUpdate(gomock.Any()).Return(nil).AnyTimes()

	src := newFakeSource(12.9716, 77.5946)
	session, err := uc.StartTracking(context.Background(), "driver-1", src)
	require.NoError(t, err)
	<-reported // initial report

	// No listener traffic at all; the timer alone must keep reporting.
	select {
	case pos := <-reported:
		assert.Equal(t, "driver-1", pos.DriverID)
	case <-time.After(3 * time.Second):
		t.Fatal("timer resample did not reach the repository")
	}

	uc.StopTracking(session)
}

func TestStopTracking_DrainsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().UpsertPosition(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockGW.EXPECT().PublishLocationUpdate(gomock.Any()).Return(nil).AnyTimes()

	src := newFakeSource(12.9716, 77.5946)
	session, err := uc.StartTracking(context.Background(), "driver-1", src)
	require.NoError(t, err)

	uc.StopTracking(session)

	select {
	case <-session.Done():
	default:
		t.Fatal("session loop still running after StopTracking")
	}
}

func TestReportPosition_InvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	err := uc.ReportPosition(context.Background(), "driver-1", &models.PositionFix{
		Latitude:  95.0,
		Longitude: 77.5946,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidParameter))
}

func TestReportPosition_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().UpsertPosition(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLocationUpdate(gomock.Any()).Return(errors.New("nsqd unreachable"))

	err := uc.ReportPosition(context.Background(), "driver-1", &models.PositionFix{
		Latitude:  12.9716,
		Longitude: 77.5946,
		Timestamp: time.Now(),
	})

	assert.NoError(t, err)
}

func TestReportOnce_UsesLastKnownFix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	uc := NewLocationUC(testConfig(), mockRepo, mockGW)

	session := location.NewSession("driver-1", func() {}, models.PositionFix{
		Latitude:  12.9716,
		Longitude: 77.5946,
		Timestamp: time.Now().Add(-time.Minute),
	})

	var stored *models.LivePosition
	mockRepo.EXPECT().
		UpsertPosition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pos *models.LivePosition) error {
			stored = pos
			return nil
		})
	mockGW.EXPECT().PublishLocationUpdate(gomock.Any()).Return(nil)

	err := uc.ReportOnce(context.Background(), session)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 12.9716, stored.Latitude)
	// Re-stamped at report time, not the stale fix time.
	assert.WithinDuration(t, time.Now(), stored.UpdatedAt, 5*time.Second)
}
