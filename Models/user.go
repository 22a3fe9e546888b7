package Models

import (
	"errors"
	"html"
	"math"
	"strings"

	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Utils/Token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Roles only affect the note appended to a triage verdict, never the
// classification itself.
const (
	RolePatient                = "patient"
	RoleMedicalStudent         = "medical_student"
	RoleHealthcareProfessional = "healthcare_professional"
)

var ErrDuplicateUser = errors.New("username or email already exists")

type User struct {
	gorm.Model
	Username       string        `gorm:"size:255;not null;unique" json:"username"`
	Email          string        `gorm:"size:255;not null;unique" json:"email"`
	Password       string        `gorm:"size:255;not null" json:"password"`
	Age            int           `json:"age"`
	Height         float64       `json:"height"`
	Weight         float64       `json:"weight"`
	BMI            float64       `json:"bmi"`
	Role           string        `gorm:"size:64;default:patient" json:"role"`
	MedicalID      string        `json:"medical_id"`
	Specialization string        `json:"specialization"`
	Tokens         []DeviceToken `gorm:"foreignKey:UserID"`
}

type DeviceToken struct {
	gorm.Model
	UserID uint
	Value  string `json:"value" gorm:"unique"`
}

func GetUserByID(uid uint) (User, error) {
	var user User

	if err := DB.First(&user, uid).Error; err != nil {
		return user, errors.New("User not found")
	}

	user.PrepareGive()

	return user, nil

}

func GetFCMsByID(uid uint) ([]string, error) {
	var fcms []string
	if err := DB.Model(&DeviceToken{}).Where("user_id = ?", uid).Select("value").Find(&fcms).Error; err != nil {
		return []string{}, errors.New("No FCMS found")
	}

	return fcms, nil
}

func (user *User) PrepareGive() {
	user.Password = ""
}

// ComputeBMI returns weight/height² rounded to two decimals, with
// height given in centimeters. Zero when either input is missing.
func ComputeBMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	meters := heightCm / 100
	return math.Round(weightKg/(meters*meters)*100) / 100
}

func VerifyPassword(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func LoginCheck(username string, password string) (uint, string, error) {

	var err error

	user := User{}

	err = DB.Model(User{}).Where("username = ?", username).Take(&user).Error

	if err != nil {
		return 0, "", err
	}

	err = VerifyPassword(password, user.Password)

	if err != nil && err == bcrypt.ErrMismatchedHashAndPassword {
		return 0, "", err
	}

	token, err := Token.GenerateToken(user.ID)

	if err != nil {
		return 0, "", err
	}

	return user.ID, token, nil

}

// SaveUser creates the account. A taken username or email is reported
// as ErrDuplicateUser instead of surfacing the constraint violation.
func (user *User) SaveUser() (*User, error) {

	if err := user.BeforeSave(); err != nil {
		return &User{}, err
	}

	var count int64
	if err := DB.Model(&User{}).Where("username = ? OR email = ?", user.Username, user.Email).Count(&count).Error; err != nil {
		return &User{}, err
	}
	if count > 0 {
		return &User{}, ErrDuplicateUser
	}

	if err := DB.Create(&user).Error; err != nil {
		return &User{}, err
	}

	return user, nil
}

func (user *User) BeforeSave() error {

	//turn password into hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	//remove spaces in username
	user.Username = html.EscapeString(strings.TrimSpace(user.Username))
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	return nil

}
