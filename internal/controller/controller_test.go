package controller

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/campus_connect/internal/apierr"
	"github.com/shenikar/campus_connect/internal/client"
	"github.com/shenikar/campus_connect/internal/client/clienttest"
	"github.com/shenikar/campus_connect/internal/models"
	"github.com/shenikar/campus_connect/internal/session"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newIncidentController связывает контроллер с клиентом поддельного API
func newIncidentController(t *testing.T) (*Controller[[]models.Incident], *clienttest.FakeAPI) {
	api := clienttest.New(t)
	store := session.NewMemoryStore()
	require.NoError(t, store.Store(context.Background(), api.Token(), api.User))
	c := client.New(api.BaseURL(), store, quietLogger())
	return New("incidents", c.ListIncidents, WithLogger(quietLogger())), api
}

func TestController_InitialStateIsLoading(t *testing.T) {
	ctrl := New("noop", func(context.Context) (int, error) { return 1, nil })

	assert.Equal(t, Loading, ctrl.State().Phase)
}

func TestController_ReadyWithServerOrder(t *testing.T) {
	// Подготовка
	ctrl, api := newIncidentController(t)
	for i := 1; i <= 4; i++ {
		api.AddIncident(models.Incident{ID: int64(i * 10), Title: "incident", Status: models.IncidentPending})
	}

	// Действие
	state := ctrl.Refresh(context.Background())

	// Проверки
	require.Equal(t, Ready, state.Phase)
	require.Len(t, state.Data, 4)
	for i, incident := range state.Data {
		assert.Equal(t, int64((i+1)*10), incident.ID)
	}
	assert.Equal(t, state, ctrl.State())
}

func TestController_ErrorMessageFromBody(t *testing.T) {
	ctrl, api := newIncidentController(t)
	api.Fail("campus/get_incidents/", http.StatusNotFound, `{"message":"Campus not found"}`)

	state := ctrl.Refresh(context.Background())

	assert.Equal(t, Error, state.Phase)
	assert.Equal(t, "Campus not found", state.Message)
	assert.Equal(t, apierr.KindAPI, state.Kind)
	assert.Nil(t, state.Data)
}

func TestController_ErrorDiscardsPreviousPayload(t *testing.T) {
	var fail atomic.Bool
	ctrl := New("numbers", func(context.Context) ([]int, error) {
		if fail.Load() {
			return nil, &apierr.NetworkError{Path: "numbers", Err: errors.New("connection refused")}
		}
		return []int{1, 2, 3}, nil
	}, WithLogger(quietLogger()))

	require.Equal(t, Ready, ctrl.Refresh(context.Background()).Phase)
	fail.Store(true)
	state := ctrl.Refresh(context.Background())

	assert.Equal(t, Error, state.Phase)
	assert.Nil(t, state.Data)
	assert.Equal(t, apierr.KindNetwork, state.Kind)
}

func TestController_AuthRequired(t *testing.T) {
	api := clienttest.New(t)
	c := client.New(api.BaseURL(), session.NewMemoryStore(), quietLogger())
	ctrl := New("notices", c.ListNotices, WithLogger(quietLogger()))

	state := ctrl.Refresh(context.Background())

	assert.Equal(t, Error, state.Phase)
	assert.Equal(t, apierr.KindAuthRequired, state.Kind)
	assert.Zero(t, api.Requests())
}

func TestController_SubscribersSeeTransitions(t *testing.T) {
	ctrl := New("value", func(context.Context) (string, error) { return "ok", nil }, WithLogger(quietLogger()))
	var phases []Phase
	ctrl.Subscribe(func(s State[string]) { phases = append(phases, s.Phase) })

	ctrl.Refresh(context.Background())
	ctrl.Refresh(context.Background())

	assert.Equal(t, []Phase{Loading, Ready, Loading, Ready}, phases)
}

// overlappingRefresh запускает два refresh и завершает второй раньше первого
func overlappingRefresh(t *testing.T, opts ...Option) State[string] {
	gates := []chan string{make(chan string), make(chan string)}
	var calls atomic.Int32
	ctrl := New("race", func(ctx context.Context) (string, error) {
		i := calls.Add(1) - 1
		return <-gates[i], nil
	}, append(opts, WithLogger(quietLogger()))...)

	var first, second sync.WaitGroup
	first.Add(1)
	go func() {
		defer first.Done()
		ctrl.Refresh(context.Background())
	}()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	second.Add(1)
	go func() {
		defer second.Done()
		ctrl.Refresh(context.Background())
	}()
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, Loading, ctrl.State().Phase)

	gates[1] <- "second"
	second.Wait()
	gates[0] <- "first"
	first.Wait()

	return ctrl.State()
}

func TestController_LastSettledResponseWins(t *testing.T) {
	state := overlappingRefresh(t)

	assert.Equal(t, Ready, state.Phase)
	assert.Equal(t, "first", state.Data)
	assert.Equal(t, uint64(1), state.Seq)
}

func TestController_StaleGuardKeepsLatestRequest(t *testing.T) {
	state := overlappingRefresh(t, WithStaleGuard())

	assert.Equal(t, Ready, state.Phase)
	assert.Equal(t, "second", state.Data)
	assert.Equal(t, uint64(2), state.Seq)
}

func TestController_LoadFetchesOnce(t *testing.T) {
	var calls atomic.Int32
	ctrl := New("once", func(context.Context) (int32, error) { return calls.Add(1), nil }, WithLogger(quietLogger()))

	first := ctrl.Load(context.Background())
	second := ctrl.Load(context.Background())

	assert.Equal(t, Ready, first.Phase)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestController_ResetForgetsData(t *testing.T) {
	var calls atomic.Int32
	ctrl := New("reset", func(context.Context) (int32, error) { return calls.Add(1), nil }, WithLogger(quietLogger()))
	ctrl.Load(context.Background())

	ctrl.Reset()
	assert.Equal(t, State[int32]{Phase: Loading}, ctrl.State())

	state := ctrl.Load(context.Background())
	assert.Equal(t, int32(2), state.Data)
	assert.Equal(t, int32(2), calls.Load())
}

func TestController_ResetDiscardsInFlightResponse(t *testing.T) {
	// Подготовка
	gate := make(chan string)
	var calls atomic.Int32
	ctrl := New("reset-in-flight", func(context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return <-gate, nil
		}
		return "fresh", nil
	}, WithLogger(quietLogger()))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctrl.Load(context.Background())
	}()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	// Действие
	ctrl.Reset()
	gate <- "before reset"
	wg.Wait()

	// Проверки
	assert.Equal(t, State[string]{Phase: Loading}, ctrl.State())

	state := ctrl.Load(context.Background())
	assert.Equal(t, Ready, state.Phase)
	assert.Equal(t, "fresh", state.Data)
	assert.Equal(t, int32(2), calls.Load())
}
