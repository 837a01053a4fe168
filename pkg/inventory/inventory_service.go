package inventory

import (
	"Pantry-Inventory/domain"
	"Pantry-Inventory/entities"
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type (
	InventoryService interface {
		AddIngredient(ctx context.Context, userID string, req domain.AddIngredientRequest) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, userID string, ingredientID string) error
		GetIngredients(ctx context.Context, userID string) ([]domain.IngredientResponse, error)
		GetExpiringSoon(ctx context.Context, userID string, now time.Time) ([]domain.IngredientResponse, error)
		GetDashboardStats(ctx context.Context, userID string, now time.Time) (domain.DashboardStatsResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		ids                 IDGenerator
		window              ExpiryWindow
		now                 func() time.Time

		// serialises load -> mutate -> replace within this process
		writeMu sync.Mutex
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, ids IDGenerator, window ExpiryWindow) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		ids:                 ids,
		window:              window,
		now:                 time.Now,
	}
}

func (s *inventoryService) AddIngredient(ctx context.Context, userID string, req domain.AddIngredientRequest) (domain.IngredientResponse, error) {
	uid, err := parseID(userID)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrInvalidUserID
	}

	expiryDay, err := s.window.ParseExpiry(req.ExpiryDate)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrInvalidExpiryDate
	}

	record := entities.IngredientRecord{
		ID:             s.ids.NextID(),
		UserID:         uid,
		IngredientName: req.IngredientName,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		ExpiryDate:     req.ExpiryDate,
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	records, err := s.inventoryRepository.Load(ctx)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	records = append(records, record)
	if err := s.inventoryRepository.Replace(ctx, records); err != nil {
		return domain.IngredientResponse{}, err
	}

	log.Infof("ingredient %d added for user %d", record.ID, record.UserID)
	return toIngredientResponse(record, s.window.Status(expiryDay, s.now())), nil
}

// DeleteIngredient removes the record matching both ids and rewrites the
// collection whether or not anything matched. Ids that are not integers cannot
// match any record, so storage is left untouched.
func (s *inventoryService) DeleteIngredient(ctx context.Context, userID string, ingredientID string) error {
	uid, err := parseID(userID)
	if err != nil {
		return nil
	}
	iid, err := parseID(ingredientID)
	if err != nil {
		return nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	records, err := s.inventoryRepository.Load(ctx)
	if err != nil {
		return err
	}

	kept := make([]entities.IngredientRecord, 0, len(records))
	for _, record := range records {
		if record.ID == iid && record.UserID == uid {
			continue
		}
		kept = append(kept, record)
	}

	if err := s.inventoryRepository.Replace(ctx, kept); err != nil {
		return err
	}

	if removed := len(records) - len(kept); removed > 0 {
		log.Infof("ingredient %d deleted for user %d", iid, uid)
	}
	return nil
}

func (s *inventoryService) GetIngredients(ctx context.Context, userID string) ([]domain.IngredientResponse, error) {
	uid, err := parseID(userID)
	if err != nil {
		return []domain.IngredientResponse{}, nil
	}

	records, err := s.inventoryRepository.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	response := make([]domain.IngredientResponse, 0)
	for _, record := range records {
		if record.UserID != uid {
			continue
		}
		status := ""
		if expiryDay, err := s.window.ParseExpiry(record.ExpiryDate); err == nil {
			status = s.window.Status(expiryDay, now)
		}
		response = append(response, toIngredientResponse(record, status))
	}
	return response, nil
}

func (s *inventoryService) GetExpiringSoon(ctx context.Context, userID string, now time.Time) ([]domain.IngredientResponse, error) {
	uid, err := parseID(userID)
	if err != nil {
		return []domain.IngredientResponse{}, nil
	}

	records, err := s.inventoryRepository.Load(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.IngredientResponse, 0)
	for _, record := range records {
		if record.UserID != uid {
			continue
		}
		expiryDay, err := s.window.ParseExpiry(record.ExpiryDate)
		if err != nil {
			log.Warnf("ingredient %d has unreadable expiry date %q", record.ID, record.ExpiryDate)
			continue
		}
		if s.window.Contains(expiryDay, now) {
			response = append(response, toIngredientResponse(record, domain.StatusWarning))
		}
	}
	return response, nil
}

func (s *inventoryService) GetDashboardStats(ctx context.Context, userID string, now time.Time) (domain.DashboardStatsResponse, error) {
	var stats domain.DashboardStatsResponse

	uid, err := parseID(userID)
	if err != nil {
		return stats, nil
	}

	records, err := s.inventoryRepository.Load(ctx)
	if err != nil {
		return stats, err
	}

	for _, record := range records {
		if record.UserID != uid {
			continue
		}
		stats.TotalItems++

		expiryDay, err := s.window.ParseExpiry(record.ExpiryDate)
		if err != nil {
			continue
		}
		switch s.window.Status(expiryDay, now) {
		case domain.StatusExpired:
			stats.ExpiredItems++
		case domain.StatusWarning:
			stats.WarningItems++
		default:
			stats.SafeItems++
		}
	}
	return stats, nil
}

func parseID(value string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
}

func toIngredientResponse(record entities.IngredientRecord, status string) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:             record.ID,
		UserID:         record.UserID,
		IngredientName: record.IngredientName,
		Quantity:       record.Quantity,
		Unit:           record.Unit,
		ExpiryDate:     record.ExpiryDate,
		Status:         status,
	}
}
