package service

//go:generate mockgen -source=portal.go -destination=mocks/mock_portal.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/campus_connect/internal/config"
	"github.com/shenikar/campus_connect/internal/controller"
	"github.com/shenikar/campus_connect/internal/models"
	"github.com/shenikar/campus_connect/internal/session"
	"github.com/shenikar/campus_connect/internal/webhook"
	"github.com/sirupsen/logrus"
)

// APIClient определяет контракт удаленного API кампуса
type APIClient interface {
	ListCampuses(ctx context.Context) ([]models.Campus, error)
	Register(ctx context.Context, reg models.Registration) error
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
	Logout(ctx context.Context) error
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	CreateIncident(ctx context.Context, report models.IncidentReport) (*models.Incident, error)
	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
	ListNotices(ctx context.Context) ([]models.Notice, error)
	GetNotice(ctx context.Context, slug string) (*models.Notice, error)
	SubmitFeedback(ctx context.Context, feedback models.Feedback) error
}

// PortalService определяет контракт для представлений портала.
// Чтения возвращают состояние контроллера, а не ошибку.
type PortalService interface {
	Campuses(ctx context.Context) controller.State[[]models.Campus]
	Register(ctx context.Context, reg models.Registration) error
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*models.Session, error)

	Incidents(ctx context.Context) controller.State[[]models.Incident]
	RefreshIncidents(ctx context.Context) controller.State[[]models.Incident]
	Incident(ctx context.Context, id int64) controller.State[*models.Incident]
	ReportIncident(ctx context.Context, report models.IncidentReport) (*models.Incident, error)

	Notices(ctx context.Context) controller.State[[]models.Notice]
	RefreshNotices(ctx context.Context) controller.State[[]models.Notice]
	Notice(ctx context.Context, slug string) controller.State[*models.Notice]

	SubmitFeedback(ctx context.Context, feedback models.Feedback) error
}

type portalService struct {
	api       APIClient
	store     session.Store
	publisher webhook.Publisher
	logger    *logrus.Logger
	opts      []controller.Option

	incidents *controller.Controller[[]models.Incident]
	notices   *controller.Controller[[]models.Notice]

	now func() time.Time
}

// NewPortalService создает сервис; publisher может быть nil, тогда вебхуки не публикуются
func NewPortalService(api APIClient, store session.Store, logger *logrus.Logger, cfg *config.Config, publisher webhook.Publisher) PortalService {
	opts := []controller.Option{controller.WithLogger(logger)}
	if cfg != nil && cfg.DiscardStaleRefresh {
		opts = append(opts, controller.WithStaleGuard())
	}
	return &portalService{
		api:       api,
		store:     store,
		publisher: publisher,
		logger:    logger,
		opts:      opts,
		incidents: controller.New("incidents", api.ListIncidents, opts...),
		notices:   controller.New("notices", api.ListNotices, opts...),
		now:       time.Now,
	}
}

// Campuses загружает список кампусов для формы регистрации
func (s *portalService) Campuses(ctx context.Context) controller.State[[]models.Campus] {
	return controller.New("campuses", s.api.ListCampuses, s.opts...).Refresh(ctx)
}

// Register регистрирует пользователя; после регистрации нужен отдельный вход
func (s *portalService) Register(ctx context.Context, reg models.Registration) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "portal",
		"method":    "Register",
		"email":     reg.Email,
		"campus_id": reg.CampusID,
	})
	log.Info("Attempting to register a new user")

	if err := s.api.Register(ctx, reg); err != nil {
		log.WithError(err).Warn("Registration failed")
		return fmt.Errorf("service: could not register: %w", err)
	}

	log.Info("User registered successfully")
	return nil
}

// Login открывает сессию и сбрасывает данные предыдущего пользователя
func (s *portalService) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "portal",
		"method":  "Login",
		"email":   creds.Email,
	})
	log.Info("Attempting to log in")

	sess, err := s.api.Login(ctx, creds)
	if err != nil {
		log.WithError(err).Warn("Login failed")
		return nil, fmt.Errorf("service: could not log in: %w", err)
	}

	s.resetViews()
	log.WithField("user_id", sess.User.ID).Info("Logged in successfully")
	return sess, nil
}

// Logout закрывает сессию
func (s *portalService) Logout(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "portal",
		"method":  "Logout",
	})

	if err := s.api.Logout(ctx); err != nil {
		log.WithError(err).Error("Failed to clear session")
		return fmt.Errorf("service: could not log out: %w", err)
	}

	s.resetViews()
	log.Info("Logged out")
	return nil
}

// CurrentSession возвращает сохраненную сессию или nil
func (s *portalService) CurrentSession(ctx context.Context) (*models.Session, error) {
	sess, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not load session: %w", err)
	}
	return sess, nil
}

// Incidents возвращает состояние списка; первое обращение запускает загрузку
func (s *portalService) Incidents(ctx context.Context) controller.State[[]models.Incident] {
	return s.incidents.Load(ctx)
}

// RefreshIncidents заново загружает список инцидентов
func (s *portalService) RefreshIncidents(ctx context.Context) controller.State[[]models.Incident] {
	return s.incidents.Refresh(ctx)
}

// Incident загружает один инцидент; у каждого просмотра свой контроллер
func (s *portalService) Incident(ctx context.Context, id int64) controller.State[*models.Incident] {
	fetch := func(ctx context.Context) (*models.Incident, error) {
		return s.api.GetIncident(ctx, id)
	}
	return controller.New(fmt.Sprintf("incident/%d", id), fetch, s.opts...).Refresh(ctx)
}

// ReportIncident подает инцидент, помечает список устаревшим и публикует вебхук
func (s *portalService) ReportIncident(ctx context.Context, report models.IncidentReport) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "portal",
		"method":        "ReportIncident",
		"title":         report.Title,
		"incident_type": report.IncidentType,
		"media_count":   len(report.MediaFiles),
	})
	log.Info("Attempting to report a new incident")

	created, err := s.api.CreateIncident(ctx, report)
	if err != nil {
		log.WithError(err).Warn("Failed to report incident")
		return nil, fmt.Errorf("service: could not report incident: %w", err)
	}
	if created != nil {
		log = log.WithField("incident_id", created.ID)
	}
	log.Info("Incident reported successfully")

	// Список загрузится заново при следующем обращении
	s.incidents.Reset()
	s.publishReported(ctx, log, report, created)
	return created, nil
}

func (s *portalService) publishReported(ctx context.Context, log *logrus.Entry, report models.IncidentReport, created *models.Incident) {
	if s.publisher == nil {
		return
	}
	var reporter models.UserProfile
	if sess, err := s.store.Load(ctx); err == nil && sess != nil {
		reporter = sess.User
	}
	event := webhook.NewIncidentReported(report, created, reporter, s.now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish webhook event")
	}
}

// Notices возвращает состояние доски объявлений; первое обращение запускает загрузку
func (s *portalService) Notices(ctx context.Context) controller.State[[]models.Notice] {
	return s.notices.Load(ctx)
}

// RefreshNotices заново загружает объявления
func (s *portalService) RefreshNotices(ctx context.Context) controller.State[[]models.Notice] {
	return s.notices.Refresh(ctx)
}

// Notice загружает одно объявление по slug
func (s *portalService) Notice(ctx context.Context, slug string) controller.State[*models.Notice] {
	fetch := func(ctx context.Context) (*models.Notice, error) {
		return s.api.GetNotice(ctx, slug)
	}
	return controller.New("notice/"+slug, fetch, s.opts...).Refresh(ctx)
}

// SubmitFeedback отправляет отзыв
func (s *portalService) SubmitFeedback(ctx context.Context, feedback models.Feedback) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "portal",
		"method":  "SubmitFeedback",
		"rating":  feedback.Rating,
	})

	if err := s.api.SubmitFeedback(ctx, feedback); err != nil {
		log.WithError(err).Warn("Failed to submit feedback")
		return fmt.Errorf("service: could not submit feedback: %w", err)
	}

	log.Info("Feedback submitted")
	return nil
}

func (s *portalService) resetViews() {
	s.incidents.Reset()
	s.notices.Reset()
}
