package models_test

import (
	"github.com/outlay-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUsernameRequired() {
	err := models.DB.Create(&models.User{Username: " ", PasswordHash: "hash"}).Error
	suite.Assert().ErrorIs(err, models.ErrNameRequired)
}

func (suite *TestSuiteStandard) TestUsernameUnique() {
	_ = suite.createTestUser(models.User{Username: "alex"})

	err := models.DB.Create(&models.User{Username: "alex", PasswordHash: "hash"}).Error
	suite.Assert().ErrorIs(err, models.ErrUsernameNotUnique)
}
