package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/constants"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
)

type ImportHandlerTestSuite struct {
	suite.Suite
	env     *testEnv
	hrToken string
}

func (s *ImportHandlerTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
	s.hrToken = s.env.token(s.T(), constants.RoleHR, nil)
}

func (s *ImportHandlerTestSuite) buildWorkbook(header []interface{}, rows [][]interface{}) []byte {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	s.Require().NoError(f.SetSheetRow(sheet, "A1", &header))
	for i := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		s.Require().NoError(err)
		s.Require().NoError(f.SetSheetRow(sheet, cellRef, &rows[i]))
	}
	buf, err := f.WriteToBuffer()
	s.Require().NoError(err)
	s.Require().NoError(f.Close())
	return buf.Bytes()
}

func (s *ImportHandlerTestSuite) upload(path string, workbook []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "upload.xlsx")
	s.Require().NoError(err)
	_, err = part.Write(workbook)
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.hrToken)

	w := httptest.NewRecorder()
	s.env.router.ServeHTTP(w, req)
	return w
}

func (s *ImportHandlerTestSuite) TestEmployeeImportPartialSuccess() {
	workbook := s.buildWorkbook(
		[]interface{}{"Full Name", "Department", "Designation", "Email", "Date of Joining", "Status"},
		[][]interface{}{
			{"Asha Rao", "Engineering", "Engineer", "asha.rao@example.com", "2024-01-15", "Active"},
			{"No Email", "Ops", "Lead", "", "2024-02-01", "Active"},
			{"Vikram Shah", "Sales", "Manager", "vikram.shah@example.com", "2024-03-01", ""},
		},
	)

	w := s.upload("/api/employees/import", workbook)
	s.Require().Equal(http.StatusMultiStatus, w.Code, w.Body.String())

	body := decodeBody(s.T(), w)
	s.Equal(false, body["success"])
	s.EqualValues(2, body["imported"])
	s.Len(body["errors"], 1)

	var count int64
	s.env.db.Model(&models.Employee{}).Count(&count)
	s.EqualValues(2, count)
}

func (s *ImportHandlerTestSuite) TestEmployeeImportAllGood() {
	workbook := s.buildWorkbook(
		[]interface{}{"Full Name", "Department", "Designation", "Email", "Date of Joining", "Status"},
		[][]interface{}{
			{"Asha Rao", "Engineering", "Engineer", "asha.rao@example.com", "2024-01-15", "Active"},
		},
	)

	w := s.upload("/api/employees/import", workbook)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal(true, decodeBody(s.T(), w)["success"])
}

func (s *ImportHandlerTestSuite) TestImportAllRowsBad() {
	workbook := s.buildWorkbook(
		[]interface{}{"Full Name", "Department", "Designation", "Email", "Date of Joining", "Status"},
		[][]interface{}{
			{"No Email", "", "", "", "2024-02-01", ""},
		},
	)

	w := s.upload("/api/employees/import", workbook)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ImportHandlerTestSuite) TestImportRejectsNonWorkbook() {
	w := s.upload("/api/assets/import", []byte("plain text, not xlsx"))
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ImportHandlerTestSuite) TestImportRequiresFileField() {
	w := s.env.request(s.T(), http.MethodPost, "/api/sim-connections/import", nil, s.hrToken)
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestImportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ImportHandlerTestSuite))
}
