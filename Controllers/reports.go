package Controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Models"
	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Utils/Token"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

func FetchConsultations(c *gin.Context) {
	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	consultations, err := Models.GetUserConsultations(user_id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	type consultationOutput struct {
		ID              uint     `json:"id"`
		Symptoms        string   `json:"symptoms"`
		Diagnosis       string   `json:"diagnosis"`
		Recommendations []string `json:"recommendations"`
		Severity        string   `json:"severity"`
		CreatedAt       string   `json:"created_at"`
	}

	output := make([]consultationOutput, 0, len(consultations))
	for index := range consultations {
		output = append(output, consultationOutput{
			ID:              consultations[index].ID,
			Symptoms:        consultations[index].Symptoms,
			Diagnosis:       consultations[index].Diagnosis,
			Recommendations: consultations[index].RecommendationList(),
			Severity:        consultations[index].Severity,
			CreatedAt:       consultations[index].CreatedAt.Format(Models.TimeLayout),
		})
	}

	c.JSON(http.StatusOK, output)
}

func GetConsultationStats(c *gin.Context) {
	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := Models.GetConsultationStats(user_id, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ExportConsultationsExcel writes the user's consultation history to a
// spreadsheet, optionally restricted to a date range.
func ExportConsultationsExcel(c *gin.Context) {
	var input struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, err)
		return
	}

	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var consultations []Models.Consultation

	query := Models.DB.Model(&Models.Consultation{}).Where("user_id = ?", user_id)
	if input.DateFrom != "" && input.DateTo != "" {
		query = query.Where("created_at BETWEEN ? AND ?", input.DateFrom, input.DateTo)
	}
	if err := query.Order("created_at DESC").Find(&consultations).Error; err != nil {
		c.JSON(http.StatusBadRequest, err)
		return
	}

	headers := map[string]string{
		"A1": "Date",
		"B1": "Symptoms",
		"C1": "Diagnosis",
		"D1": "Severity",
		"E1": "Recommendations",
	}
	file := excelize.NewFile()
	sheet := "Consultations"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(consultations); i++ {
		appendRowConsultation(sheet, file, i, consultations)
	}
	var filename string = "./Consultations.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowConsultation(sheet string, file *excelize.File, index int, rows []Models.Consultation) (fileWriter *excelize.File) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].CreatedAt.Format(Models.TimeLayout))
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].Symptoms)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].Diagnosis)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Severity)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), strings.Join(rows[index].RecommendationList(), "\n"))
	return file

}
