package controllers

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dr-lamia/med-nexus-portal/authentication"
	"github.com/dr-lamia/med-nexus-portal/configuration"
	"github.com/dr-lamia/med-nexus-portal/logger"
	"github.com/dr-lamia/med-nexus-portal/models"
	"github.com/dr-lamia/med-nexus-portal/storage"
)

var validate = validator.New()

// MockCurrentPatientID is the patient id the prescription history pins
// patient-mode queries to.
const MockCurrentPatientID = "P123"

// Login handles the login process. There is no backing credential database:
// any email/password resolves to a session after the simulated delay. A
// previously registered identity wins over the canonical mock patient.
func Login(c *gin.Context) {
	var loginReq models.LoginRequest
	if err := c.BindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	configuration.SimulateLatency(1500 * time.Millisecond)

	user := models.SessionUser{
		ID:        "user123",
		Email:     loginReq.Email,
		FirstName: "John",
		LastName:  "Doe",
		UserType:  models.UserTypePatient,
	}
	if registered, ok := storage.Users.FindByEmail(loginReq.Email); ok {
		user = registered.SessionUser
	}

	token, err := createSession(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"message": "Welcome back to MedNexus!",
		"token":   token,
		"user":    user,
	})
}

// Register handles the signup form. The account only exists in memory; it
// decides which identity later logins resolve to.
func Register(c *gin.Context) {
	var registerReq models.RegisterRequest
	if err := c.BindJSON(&registerReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validate.Struct(registerReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"Status":  "Failed",
			"message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	if registerReq.Password != registerReq.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registerReq.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	configuration.SimulateLatency(1500 * time.Millisecond)

	user := models.SessionUser{
		ID:        fmt.Sprintf("user%d", rand.Intn(1000)),
		Email:     registerReq.Email,
		FirstName: registerReq.FirstName,
		LastName:  registerReq.LastName,
		UserType:  registerReq.UserType,
	}
	storage.Users.Add(models.RegisteredUser{
		SessionUser:  user,
		PasswordHash: string(hashedPassword),
	})

	token, err := createSession(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"message": "Your account has been created successfully!",
		"token":   token,
		"user":    user,
	})
}

// Session echoes the current session user for the header widget.
func Session(c *gin.Context) {
	user := authentication.SessionUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout removes the stored session, which invalidates the token even
// before its JWT expiry.
func Logout(c *gin.Context) {
	sessionID := c.GetString("sessionID")
	if sessionID != "" {
		if err := storage.Sessions.Delete(sessionID); err != nil {
			logger.WithComponent("users").WithError(err).Error("failed to delete session")
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "You have been successfully logged out."})
}

func createSession(user models.SessionUser) (string, error) {
	sessionID := uuid.NewString()
	if err := storage.Sessions.Save(sessionID, user); err != nil {
		return "", err
	}
	return authentication.GenerateSessionToken(sessionID, user)
}
