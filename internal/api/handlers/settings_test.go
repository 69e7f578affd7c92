package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"workclock-backend/internal/api/handlers"
	apperrors "workclock-backend/internal/errors"
	"workclock-backend/internal/mocks"
	"workclock-backend/internal/service"
	"workclock-backend/internal/settings"
	"workclock-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SettingsHandlerTestSuite defines the test suite for SettingsHandler
type SettingsHandlerTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *mocks.MockSettingsStore
	http  *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *SettingsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.store = mocks.NewMockSettingsStore(suite.ctrl)

	settingsService := service.NewSettingsService(suite.store, service.NoopNotifier{}, validator.New(), "workclock:user:settings")
	handler := handlers.NewSettingsHandler(settingsService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/api/v1/settings", handler.GetSettings)
	suite.http.Router.PUT("/api/v1/settings", handler.UpdateSettings)
	suite.http.Router.GET("/api/v1/settings/overrides", handler.ListOverrides)
	suite.http.Router.PUT("/api/v1/settings/overrides/:key", handler.PutOverride)
	suite.http.Router.DELETE("/api/v1/settings/overrides/:key", handler.DeleteOverride)
}

// TearDownTest cleans up after each test
func (suite *SettingsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetSettingsFirstRun tests that a fresh install serves defaults
func (suite *SettingsHandlerTestSuite) TestGetSettingsFirstRun() {
	suite.store.EXPECT().Load("workclock:user:settings").Return(nil, apperrors.ErrSettingNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/settings", nil)

	var prefs settings.Preferences
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &prefs)
	suite.Equal(settings.DefaultStartHour, prefs.StartHour)
	suite.Equal(settings.DefaultPageSize, prefs.PageSize)
}

// TestUpdateSettings tests the merge-and-save flow over HTTP
func (suite *SettingsHandlerTestSuite) TestUpdateSettings() {
	stored := `{"timezone":"Asia/Tokyo","pageSize":25}`
	suite.store.EXPECT().Load("workclock:user:settings").Return(json.RawMessage(stored), nil)
	suite.store.EXPECT().Save("workclock:user:settings", gomock.Any()).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodPut, "/api/v1/settings",
		json.RawMessage(`{"showOnlineOnly":true}`))

	var prefs settings.Preferences
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &prefs)
	suite.True(prefs.ShowOnlineOnly)
	suite.Equal("Asia/Tokyo", prefs.Timezone)
	suite.Equal(25, prefs.PageSize)
}

// TestUpdateSettingsInvalidTimezone tests the 400 mapping
func (suite *SettingsHandlerTestSuite) TestUpdateSettingsInvalidTimezone() {
	suite.store.EXPECT().Load("workclock:user:settings").Return(nil, apperrors.ErrSettingNotFound)

	recorder := suite.http.MakeRequest(http.MethodPut, "/api/v1/settings",
		json.RawMessage(`{"timezone":"Not/AZone"}`))

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// TestPutOverride tests saving an override over HTTP
func (suite *SettingsHandlerTestSuite) TestPutOverride() {
	suite.store.EXPECT().Load("workclock:user:settings").Return(nil, apperrors.ErrSettingNotFound)
	suite.store.EXPECT().Save("workclock:user:settings", gomock.Any()).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodPut, "/api/v1/settings/overrides/u1",
		json.RawMessage(`{"timezone":"Europe/Berlin","startHour":"10:00","endHour":"18:00"}`))

	var ov settings.Override
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &ov)
	suite.Equal("Europe/Berlin", ov.Timezone)
	suite.Positive(ov.UpdatedAt)
}

// TestDeleteOverrideMissing tests the 404 mapping for unknown overrides
func (suite *SettingsHandlerTestSuite) TestDeleteOverrideMissing() {
	suite.store.EXPECT().Load("workclock:user:settings").Return(nil, apperrors.ErrSettingNotFound)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/api/v1/settings/overrides/ghost", nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

// TestDeleteOverride tests removing an override over HTTP
func (suite *SettingsHandlerTestSuite) TestDeleteOverride() {
	stored := `{"userOverrides":{"u1":{"timezone":"Asia/Seoul"}}}`
	suite.store.EXPECT().Load("workclock:user:settings").Return(json.RawMessage(stored), nil)
	suite.store.EXPECT().Save("workclock:user:settings", gomock.Any()).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/api/v1/settings/overrides/u1", nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestListOverrides tests the override listing
func (suite *SettingsHandlerTestSuite) TestListOverrides() {
	stored := `{"userOverrides":{"u1":{"timezone":"Asia/Seoul"}}}`
	suite.store.EXPECT().Load("workclock:user:settings").Return(json.RawMessage(stored), nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/settings/overrides", nil)

	var overrides map[string]settings.Override
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &overrides)
	suite.Contains(overrides, "u1")
	suite.Equal("Asia/Seoul", overrides["u1"].Timezone)
}

// TestSettingsHandlerTestSuite runs the test suite
func TestSettingsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}
