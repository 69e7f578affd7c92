package service_test

import (
	"context"
	"encoding/json"
	"testing"

	apperrors "workclock-backend/internal/errors"
	"workclock-backend/internal/mocks"
	"workclock-backend/internal/service"
	"workclock-backend/internal/settings"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const settingsKey = "workclock:user:settings"

// SettingsServiceTestSuite defines the test suite for SettingsService
type SettingsServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *mocks.MockSettingsStore
	notifier  *mocks.MockNotifier
	validator *validator.Validate
	svc       *service.SettingsService
}

// SetupTest sets up the test suite
func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.store = mocks.NewMockSettingsStore(suite.ctrl)
	suite.notifier = mocks.NewMockNotifier(suite.ctrl)
	suite.validator = validator.New()
	suite.svc = service.NewSettingsService(suite.store, suite.notifier, suite.validator, settingsKey)
}

// TearDownTest cleans up after each test
func (suite *SettingsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetMissingDocumentReturnsDefaults tests first-run behavior
func (suite *SettingsServiceTestSuite) TestGetMissingDocumentReturnsDefaults() {
	suite.store.EXPECT().Load(settingsKey).Return(nil, apperrors.ErrSettingNotFound)

	prefs, err := suite.svc.Get(context.Background())
	suite.NoError(err)
	suite.Equal(settings.Defaults(), prefs)
}

// TestGetMalformedDocumentFallsBackToDefaults tests the degraded read path
func (suite *SettingsServiceTestSuite) TestGetMalformedDocumentFallsBackToDefaults() {
	suite.store.EXPECT().Load(settingsKey).Return(json.RawMessage(`"[object Object]"`), nil)

	prefs, err := suite.svc.Get(context.Background())
	suite.NoError(err)
	suite.Equal(settings.Defaults(), prefs)
}

// TestGetDoubleEncodedDocument tests reading a string-wrapped document
func (suite *SettingsServiceTestSuite) TestGetDoubleEncodedDocument() {
	doc := `"{\"timezone\":\"Asia/Tokyo\",\"pageSize\":25}"`
	suite.store.EXPECT().Load(settingsKey).Return(json.RawMessage(doc), nil)

	prefs, err := suite.svc.Get(context.Background())
	suite.NoError(err)
	suite.Equal("Asia/Tokyo", prefs.Timezone)
	suite.Equal(25, prefs.PageSize)
}

// TestUpdateMergesIntoStoredDocument tests that absent fields keep stored values
func (suite *SettingsServiceTestSuite) TestUpdateMergesIntoStoredDocument() {
	stored := `{"timezone":"Asia/Tokyo","pageSize":25,"showOnlineOnly":true}`
	suite.store.EXPECT().Load(settingsKey).Return(json.RawMessage(stored), nil)

	var saved json.RawMessage
	suite.store.EXPECT().Save(settingsKey, gomock.Any()).DoAndReturn(
		func(key string, value json.RawMessage) error {
			saved = value
			return nil
		})
	suite.notifier.EXPECT().Notify(gomock.Any(), service.Notification{
		Type: "success", Message: "Settings saved.",
	})

	prefs, err := suite.svc.Update(context.Background(), json.RawMessage(`{"pageSize":50}`))
	suite.NoError(err)
	suite.Equal(50, prefs.PageSize)
	suite.Equal("Asia/Tokyo", prefs.Timezone)
	suite.True(prefs.ShowOnlineOnly)

	var roundTrip settings.Preferences
	suite.NoError(json.Unmarshal(saved, &roundTrip))
	suite.Equal(50, roundTrip.PageSize)
}

// TestUpdateRejectsInvalidTimezone tests timezone validation on writes
func (suite *SettingsServiceTestSuite) TestUpdateRejectsInvalidTimezone() {
	suite.store.EXPECT().Load(settingsKey).Return(nil, apperrors.ErrSettingNotFound)

	_, err := suite.svc.Update(context.Background(), json.RawMessage(`{"timezone":"Not/AZone"}`))
	suite.True(apperrors.IsInvalidTimeZone(err))
}

// TestUpdateSaveFailureNotifiesError tests the error notification path
func (suite *SettingsServiceTestSuite) TestUpdateSaveFailureNotifiesError() {
	suite.store.EXPECT().Load(settingsKey).Return(nil, apperrors.ErrSettingNotFound)
	suite.store.EXPECT().Save(settingsKey, gomock.Any()).Return(context.DeadlineExceeded)
	suite.notifier.EXPECT().Notify(gomock.Any(), service.Notification{
		Type: "error", Message: "Could not save settings.",
	})

	_, err := suite.svc.Update(context.Background(), json.RawMessage(`{"pageSize":5}`))
	suite.True(apperrors.IsPersistence(err))
}

// TestPutOverrideStampsUpdatedAt tests override creation
func (suite *SettingsServiceTestSuite) TestPutOverrideStampsUpdatedAt() {
	suite.store.EXPECT().Load(settingsKey).Return(nil, apperrors.ErrSettingNotFound)

	var saved json.RawMessage
	suite.store.EXPECT().Save(settingsKey, gomock.Any()).DoAndReturn(
		func(key string, value json.RawMessage) error {
			saved = value
			return nil
		})
	suite.notifier.EXPECT().Notify(gomock.Any(), service.Notification{
		Type: "success", Message: "Override saved.",
	})

	ov, err := suite.svc.PutOverride(context.Background(), "u1", settings.Override{
		Timezone: "Europe/Berlin",
	})
	suite.NoError(err)
	suite.Positive(ov.UpdatedAt)

	var prefs settings.Preferences
	suite.NoError(json.Unmarshal(saved, &prefs))
	suite.Equal("Europe/Berlin", prefs.UserOverrides["u1"].Timezone)
}

// TestPutOverrideRejectsInvalidTimezone tests override zone validation
func (suite *SettingsServiceTestSuite) TestPutOverrideRejectsInvalidTimezone() {
	_, err := suite.svc.PutOverride(context.Background(), "u1", settings.Override{
		Timezone: "Not/AZone",
	})
	suite.True(apperrors.IsInvalidTimeZone(err))
}

// TestPutOverrideRejectsMalformedClock tests override hour format validation
func (suite *SettingsServiceTestSuite) TestPutOverrideRejectsMalformedClock() {
	_, err := suite.svc.PutOverride(context.Background(), "u1", settings.Override{
		StartHour: "25:99",
	})
	suite.True(apperrors.IsValidation(err))
}

// TestPutOverrideRejectsEmptyKey tests key validation
func (suite *SettingsServiceTestSuite) TestPutOverrideRejectsEmptyKey() {
	_, err := suite.svc.PutOverride(context.Background(), "", settings.Override{})
	suite.True(apperrors.IsValidation(err))
}

// TestDeleteOverrideMissing tests removing an override that does not exist
func (suite *SettingsServiceTestSuite) TestDeleteOverrideMissing() {
	suite.store.EXPECT().Load(settingsKey).Return(nil, apperrors.ErrSettingNotFound)

	err := suite.svc.DeleteOverride(context.Background(), "ghost")
	suite.ErrorIs(err, apperrors.ErrOverrideNotFound)
}

// TestDeleteOverride tests removing an existing override
func (suite *SettingsServiceTestSuite) TestDeleteOverride() {
	stored := `{"userOverrides":{"u1":{"timezone":"Asia/Seoul"}}}`
	suite.store.EXPECT().Load(settingsKey).Return(json.RawMessage(stored), nil)

	var saved json.RawMessage
	suite.store.EXPECT().Save(settingsKey, gomock.Any()).DoAndReturn(
		func(key string, value json.RawMessage) error {
			saved = value
			return nil
		})
	suite.notifier.EXPECT().Notify(gomock.Any(), service.Notification{
		Type: "success", Message: "Override removed.",
	})

	suite.NoError(suite.svc.DeleteOverride(context.Background(), "u1"))

	var prefs settings.Preferences
	suite.NoError(json.Unmarshal(saved, &prefs))
	suite.NotContains(prefs.UserOverrides, "u1")
}

// TestSettingsServiceTestSuite runs the test suite
func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
