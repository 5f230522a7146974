package v1

import (
	"github.com/shenikar/campus_connect/internal/models"
	"github.com/shenikar/campus_connect/internal/presentation"
	"github.com/sirupsen/logrus"
)

// DTOToCredentials преобразует DTO входа в доменную модель
func DTOToCredentials(dto LoginRequest) models.Credentials {
	return models.Credentials{Email: dto.Email, Password: dto.Password}
}

// DTOToRegistration преобразует DTO регистрации в доменную модель
func DTOToRegistration(dto RegisterRequest) models.Registration {
	return models.Registration{
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		PhoneNumber: dto.PhoneNumber,
		Email:       dto.Email,
		Password:    dto.Password,
		CampusID:    dto.CampusID,
	}
}

// DTOToFeedback преобразует DTO отзыва в доменную модель
func DTOToFeedback(dto FeedbackRequest) models.Feedback {
	return models.Feedback{Name: dto.Name, Email: dto.Email, Message: dto.Message, Rating: dto.Rating}
}

// DTOToIncidentReport собирает доменную модель из полей формы и файлов в порядке формы
func DTOToIncidentReport(dto ReportIncidentRequest, media []models.MediaFile) models.IncidentReport {
	return models.IncidentReport{
		Title:        dto.Title,
		Description:  dto.Description,
		IncidentType: models.IncidentType(dto.IncidentType),
		Location:     dto.Location,
		MediaFiles:   media,
	}
}

// ModelToUserResponse преобразует профиль в DTO
func ModelToUserResponse(user models.UserProfile) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		FullName: user.FullName(),
		Email:    user.Email,
		Phone:    user.Phone,
		CampusID: user.CampusID,
	}
}

// ModelToCampusResponse преобразует кампус в DTO
func ModelToCampusResponse(campus models.Campus, baseURL string) CampusResponse {
	return CampusResponse{
		ID:              campus.ID,
		Name:            campus.Name,
		City:            campus.City,
		State:           campus.State,
		Country:         campus.Country,
		Address:         campus.Address,
		EstablishedYear: campus.EstablishedYear,
		Website:         campus.Website,
		ImageURL:        presentation.AssetURL(baseURL, campus.Image),
		HeadName:        campus.HeadName,
		HeadEmail:       campus.HeadEmail,
		HeadPhone:       campus.HeadPhone,
	}
}

// ModelsToCampusResponses преобразует кампусы в DTO
func ModelsToCampusResponses(campuses []models.Campus, baseURL string) []CampusResponse {
	responses := make([]CampusResponse, len(campuses))
	for i, campus := range campuses {
		responses[i] = ModelToCampusResponse(campus, baseURL)
	}
	return responses
}

// ModelToIncidentResponse преобразует инцидент в DTO: медиа упорядочены для показа,
// статус переведен в токен стиля. Неизвестный статус дает пустой токен.
func ModelToIncidentResponse(model models.Incident, baseURL string, log *logrus.Entry) IncidentResponse {
	style, err := presentation.StatusStyle(model.Status)
	if err != nil {
		log.WithFields(logrus.Fields{
			"incident_id": model.ID,
			"status":      model.Status,
		}).Warn("No style for incident status")
	}
	buckets := presentation.Classify(model.MediaFiles)
	return IncidentResponse{
		ID:           model.ID,
		Title:        model.Title,
		Description:  model.Description,
		IncidentType: string(model.IncidentType),
		Status:       string(model.Status),
		StatusStyle:  style,
		Location:     model.Location,
		Media:        presentation.Sequence(baseURL, model.MediaFiles),
		Images:       buckets.Images,
		Videos:       buckets.Videos,
		ReportedBy:   *ModelToUserResponse(model.ReportedBy),
		Campus:       ModelToCampusResponse(model.Campus, baseURL),
		CreatedAt:    model.CreatedAt.Time,
		UpdatedAt:    model.UpdatedAt.Time,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO с сохранением порядка
func ModelsToIncidentResponses(incidents []models.Incident, baseURL string, log *logrus.Entry) []IncidentResponse {
	responses := make([]IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model, baseURL, log)
	}
	return responses
}

// ModelToNoticeResponse преобразует объявление в DTO
func ModelToNoticeResponse(model models.Notice, baseURL string, log *logrus.Entry) NoticeResponse {
	style, err := presentation.PriorityStyle(model.Priority)
	if err != nil {
		log.WithFields(logrus.Fields{
			"slug":     model.Slug,
			"priority": model.Priority,
		}).Warn("No style for notice priority")
	}
	return NoticeResponse{
		ID:            model.ID,
		Slug:          model.Slug,
		Title:         model.Title,
		Description:   model.Description,
		Priority:      string(model.Priority),
		PriorityStyle: style,
		IsPinned:      model.IsPinned,
		AttachmentURL: presentation.AssetURL(baseURL, model.FileAttachment),
		PostedBy:      *ModelToUserResponse(model.PostedBy),
		Campus:        ModelToCampusResponse(model.Campus, baseURL),
		CreatedAt:     model.CreatedAt.Time,
		UpdatedAt:     model.UpdatedAt.Time,
	}
}

// ModelsToNoticeResponses преобразует слайс объявлений в слайс DTO
func ModelsToNoticeResponses(notices []models.Notice, baseURL string, log *logrus.Entry) []NoticeResponse {
	responses := make([]NoticeResponse, len(notices))
	for i, model := range notices {
		responses[i] = ModelToNoticeResponse(model, baseURL, log)
	}
	return responses
}
