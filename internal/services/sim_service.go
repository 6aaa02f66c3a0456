package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/repository"
)

var (
	ErrSimNumberRequired      = errors.New("SIM mobile number is required")
	ErrSimNotFound            = errors.New("SIM connection not found")
	ErrDuplicateSimNumber     = errors.New("a SIM connection with this number already exists")
	ErrInvalidConnectionState = errors.New("connection status must be Active or Inactive")
	ErrInvalidSimState        = errors.New("SIM status must be Assigned or In Stock")
)

// SimService handles the standalone SIM connection registry
type SimService struct {
	db *gorm.DB
}

// NewSimService creates a new SimService
func NewSimService(db *gorm.DB) *SimService {
	return &SimService{db: db}
}

// CreateSimInput represents input for registering a SIM connection
type CreateSimInput struct {
	SimMobileNumber  string
	CurrentOwnerName string
	ConnectionStatus string
	SimStatus        string
	Remarks          *string
}

// UpdateSimInput represents a partial SIM connection update
type UpdateSimInput struct {
	CurrentOwnerName *string
	ConnectionStatus *string
	SimStatus        *string
	Remarks          *string
}

// List returns all SIM connections, newest first
func (s *SimService) List() ([]models.SimConnection, error) {
	return repository.NewStore(s.db).Sims.List()
}

// Get returns a single SIM connection by its mobile number
func (s *SimService) Get(simMobileNumber string) (*models.SimConnection, error) {
	sim, err := repository.NewStore(s.db).Sims.FindByNumber(simMobileNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSimNotFound
		}
		return nil, fmt.Errorf("failed to find SIM connection: %w", err)
	}
	return sim, nil
}

// Create registers a SIM connection. The mobile number is the natural key.
func (s *SimService) Create(input CreateSimInput) (*models.SimConnection, error) {
	if input.SimMobileNumber == "" {
		return nil, ErrSimNumberRequired
	}
	connectionStatus := models.ConnectionStatusActive
	if input.ConnectionStatus != "" {
		if !models.ValidConnectionStatus(input.ConnectionStatus) {
			return nil, ErrInvalidConnectionState
		}
		connectionStatus = models.ConnectionStatus(input.ConnectionStatus)
	}
	simStatus := models.SimStatusInStock
	if input.SimStatus != "" {
		if !models.ValidSimStatus(input.SimStatus) {
			return nil, ErrInvalidSimState
		}
		simStatus = models.SimStatus(input.SimStatus)
	}

	var created *models.SimConnection
	err := s.db.Transaction(func(tx *gorm.DB) error {
		store := repository.NewStore(tx)

		if _, err := store.Sims.FindByNumber(input.SimMobileNumber); err == nil {
			return ErrDuplicateSimNumber
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check SIM number: %w", err)
		}

		sim := &models.SimConnection{
			SimMobileNumber:  input.SimMobileNumber,
			CurrentOwnerName: input.CurrentOwnerName,
			ConnectionStatus: connectionStatus,
			SimStatus:        simStatus,
			Remarks:          input.Remarks,
		}
		if err := store.Sims.Create(sim); err != nil {
			return fmt.Errorf("failed to create SIM connection: %w", err)
		}
		created = sim
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies a partial update to a SIM connection
func (s *SimService) Update(simMobileNumber string, input UpdateSimInput) (*models.SimConnection, error) {
	if input.ConnectionStatus != nil && !models.ValidConnectionStatus(*input.ConnectionStatus) {
		return nil, ErrInvalidConnectionState
	}
	if input.SimStatus != nil && !models.ValidSimStatus(*input.SimStatus) {
		return nil, ErrInvalidSimState
	}

	var updated *models.SimConnection
	err := s.db.Transaction(func(tx *gorm.DB) error {
		store := repository.NewStore(tx)

		sim, err := store.Sims.FindByNumber(simMobileNumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSimNotFound
			}
			return fmt.Errorf("failed to find SIM connection: %w", err)
		}

		if input.CurrentOwnerName != nil {
			sim.CurrentOwnerName = *input.CurrentOwnerName
		}
		if input.ConnectionStatus != nil {
			sim.ConnectionStatus = models.ConnectionStatus(*input.ConnectionStatus)
		}
		if input.SimStatus != nil {
			sim.SimStatus = models.SimStatus(*input.SimStatus)
		}
		if input.Remarks != nil {
			sim.Remarks = input.Remarks
		}

		if err := store.Sims.Update(sim); err != nil {
			return fmt.Errorf("failed to update SIM connection: %w", err)
		}
		updated = sim
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a SIM connection from the registry
func (s *SimService) Delete(simMobileNumber string) error {
	affected, err := repository.NewStore(s.db).Sims.Delete(simMobileNumber)
	if err != nil {
		return fmt.Errorf("failed to delete SIM connection: %w", err)
	}
	if affected == 0 {
		return ErrSimNotFound
	}
	return nil
}
