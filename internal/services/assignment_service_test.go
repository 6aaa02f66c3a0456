package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
)

type AssignmentServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AssignmentService
}

func (s *AssignmentServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.service = NewAssignmentService(s.db)
}

func (s *AssignmentServiceTestSuite) seed() (employeeID string, assetIDs []string) {
	employee, err := NewEmployeeService(s.db).Create(CreateEmployeeInput{
		FullName:      "Asha Rao",
		Email:         "asha.rao@example.com",
		DateOfJoining: "2024-01-15",
	})
	s.Require().NoError(err)

	assets := NewAssetService(s.db)
	for _, serial := range []string{"SN-001", "SN-002"} {
		serialCopy := serial
		asset, err := assets.Create(CreateAssetInput{
			AssetName:    "ThinkPad " + serial,
			Category:     "Laptop",
			Brand:        "Lenovo",
			SerialNumber: &serialCopy,
			Condition:    "Good",
			Status:       "Available",
		})
		s.Require().NoError(err)
		assetIDs = append(assetIDs, asset.AssetID)
	}
	return employee.EmployeeID, assetIDs
}

func (s *AssignmentServiceTestSuite) assetStatus(assetID string) models.AssetStatus {
	var asset models.Asset
	s.Require().NoError(s.db.Where("asset_id = ?", assetID).First(&asset).Error)
	return asset.Status
}

func (s *AssignmentServiceTestSuite) TestMovingActiveAssignmentReconcilesBothAssets() {
	employeeID, assetIDs := s.seed()

	created, err := s.service.Create(CreateAssignmentInput{
		EmployeeID:   employeeID,
		AssetID:      assetIDs[0],
		AssignedDate: "2024-02-01",
	})
	s.Require().NoError(err)
	s.Equal(models.AssetStatusAssigned, s.assetStatus(assetIDs[0]))

	moved, err := s.service.Update(created.AssignmentID, UpdateAssignmentInput{
		ActorRole: "HR",
		AssetID:   &assetIDs[1],
	})
	s.Require().NoError(err)
	s.Equal(assetIDs[1], moved.AssetID)
	s.Equal("ThinkPad SN-002", moved.AssetName)

	s.Equal(models.AssetStatusAvailable, s.assetStatus(assetIDs[0]))
	s.Equal(models.AssetStatusAssigned, s.assetStatus(assetIDs[1]))
}

func (s *AssignmentServiceTestSuite) TestMovingOntoHeldAssetConflicts() {
	employeeID, assetIDs := s.seed()

	other, err := NewEmployeeService(s.db).Create(CreateEmployeeInput{
		FullName:      "Vikram Shah",
		Email:         "vikram.shah@example.com",
		DateOfJoining: "2024-01-15",
	})
	s.Require().NoError(err)

	_, err = s.service.Create(CreateAssignmentInput{
		EmployeeID:   other.EmployeeID,
		AssetID:      assetIDs[1],
		AssignedDate: "2024-02-01",
	})
	s.Require().NoError(err)

	created, err := s.service.Create(CreateAssignmentInput{
		EmployeeID:   employeeID,
		AssetID:      assetIDs[0],
		AssignedDate: "2024-02-01",
	})
	s.Require().NoError(err)

	_, err = s.service.Update(created.AssignmentID, UpdateAssignmentInput{
		ActorRole: "HR",
		AssetID:   &assetIDs[1],
	})
	var conflict *AssetConflictError
	s.Require().ErrorAs(err, &conflict)
	s.Equal(assetIDs[1], conflict.Existing.AssetID)

	// Nothing moved: both assets keep their holders.
	s.Equal(models.AssetStatusAssigned, s.assetStatus(assetIDs[0]))
	s.Equal(models.AssetStatusAssigned, s.assetStatus(assetIDs[1]))
}

func (s *AssignmentServiceTestSuite) TestReopenRestoresAssetAssigned() {
	employeeID, assetIDs := s.seed()

	created, err := s.service.Create(CreateAssignmentInput{
		EmployeeID:           employeeID,
		AssetID:              assetIDs[0],
		AssignedDate:         "2024-02-01",
		ReturnDate:           strPtr("2024-03-01"),
		AssetReturnCondition: strPtr("Good"),
	})
	s.Require().NoError(err)
	s.Equal(models.AssetStatusAvailable, s.assetStatus(assetIDs[0]))

	reopened, err := s.service.Update(created.AssignmentID, UpdateAssignmentInput{
		ActorRole:       "Admin",
		ClearReturnDate: true,
	})
	s.Require().NoError(err)
	s.Nil(reopened.ReturnDate)
	s.Nil(reopened.AssetReturnCondition)
	s.Equal(models.AssetStatusAssigned, s.assetStatus(assetIDs[0]))
}

func (s *AssignmentServiceTestSuite) TestInvalidDateFormat() {
	employeeID, assetIDs := s.seed()

	_, err := s.service.Create(CreateAssignmentInput{
		EmployeeID:   employeeID,
		AssetID:      assetIDs[0],
		AssignedDate: "01-02-2024",
	})
	s.ErrorIs(err, ErrInvalidDate)
}

func (s *AssignmentServiceTestSuite) TestDeleteUnknownAssignment() {
	s.ErrorIs(s.service.Delete("ASG9999"), ErrAssignmentNotFound)
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
