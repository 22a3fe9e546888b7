package Controllers

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Models"
	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Utils/Token"

	"github.com/gin-gonic/gin"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func CurrentUser(c *gin.Context) {
	user_id, err := Token.ExtractTokenID(c)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := Models.GetUserByID(user_id)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var output struct {
		ID             uint    `json:"ID"`
		Username       string  `json:"username"`
		Email          string  `json:"email"`
		Role           string  `json:"role"`
		Age            int     `json:"age"`
		BMI            float64 `json:"bmi"`
		MedicalID      string  `json:"medical_id"`
		Specialization string  `json:"specialization"`
	}
	output.ID = user_id
	output.Username = user.Username
	output.Email = user.Email
	output.Role = user.Role
	output.Age = user.Age
	output.BMI = user.BMI
	output.MedicalID = user.MedicalID
	output.Specialization = user.Specialization
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": output})
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, token, err := Models.LoginCheck(input.Username, input.Password)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username or password is incorrect."})
		return
	}

	user, _ := Models.GetUserByID(uid)

	// Water reminders for the day are refreshed at login.
	if err := Models.ScheduleDailyWaterReminders(uid, 2, time.Now()); err != nil {
		log.Println(err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login Successful", "jwt": token, "role": user.Role})
}

type RegisterInput struct {
	Username        string  `json:"username" binding:"required"`
	Email           string  `json:"email" binding:"required"`
	Password        string  `json:"password" binding:"required"`
	ConfirmPassword string  `json:"confirm_password" binding:"required"`
	Age             int     `json:"age"`
	Height          float64 `json:"height"`
	Weight          float64 `json:"weight"`
	Role            string  `json:"role"`
	MedicalID       string  `json:"medical_id"`
	Specialization  string  `json:"specialization"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if message, ok := validateRegistration(input); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	user := Models.User{
		Username:       input.Username,
		Email:          input.Email,
		Password:       input.Password,
		Age:            input.Age,
		Height:         input.Height,
		Weight:         input.Weight,
		BMI:            Models.ComputeBMI(input.Weight, input.Height),
		Role:           input.Role,
		MedicalID:      input.MedicalID,
		Specialization: input.Specialization,
	}
	if user.Role == "" {
		user.Role = Models.RolePatient
	}

	if _, err := user.SaveUser(); err != nil {
		if errors.Is(err, Models.ErrDuplicateUser) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
			return
		}
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": "validated"})
}

// validateRegistration enforces the signup policy before anything
// reaches persistence. Returns a user-facing message on rejection.
func validateRegistration(input RegisterInput) (string, bool) {
	if !emailPattern.MatchString(input.Email) {
		return "Please enter a valid email address", false
	}
	if len(input.Password) < 8 {
		return "Password must be at least 8 characters long", false
	}
	if input.Password != input.ConfirmPassword {
		return "Passwords don't match", false
	}
	switch input.Role {
	case "", Models.RolePatient:
	case Models.RoleMedicalStudent, Models.RoleHealthcareProfessional:
		if input.MedicalID == "" {
			return "Please provide your medical ID/license number", false
		}
	default:
		return "Unknown role", false
	}
	return "", true
}

func SaveFcmToken(c *gin.Context) {
	var input struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	deviceToken := Models.DeviceToken{UserID: user_id, Value: input.Token}
	if err := Models.DB.Save(&deviceToken).Error; err != nil {
		log.Println(err)
	}
	c.JSON(http.StatusOK, nil)
}
