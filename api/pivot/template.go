package pivot

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"SalesPivotSaas/api"
	"SalesPivotSaas/api/constants"
	"SalesPivotSaas/internal/config"
)

// Handler: GenerateTargetTemplate
//
// Reads a sales sheet and answers with an .xlsx holding an
// "Employee Targets" sheet listing each distinct employee and a
// "BU Targets" sheet listing the configured BU labels, with the
// Target columns left blank to fill in.
func GenerateTargetTemplate(rules *config.Rules) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrFailedToParseMultipartForm)
			return
		}
		file, ext, err := openFormFile(r, constants.FieldSalesFile, constants.ErrNoSalesFile)
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		defer file.Close()

		table, err := parseUploadFile(file, ext)
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf(constants.FormatUnreadableWorkbook, constants.DatasetSales, err))
			return
		}
		if len(table) == 0 {
			api.RespondWithError(w, http.StatusBadRequest, "sales sheet is empty")
			return
		}
		empIdx := -1
		for i, h := range table[0] {
			if strings.TrimSpace(h) == constants.ColEmployee {
				empIdx = i
				break
			}
		}
		if empIdx < 0 {
			api.RespondWithError(w, http.StatusBadRequest,
				fmt.Sprintf(constants.FormatMissingColumns, constants.DatasetSales, constants.ColEmployee))
			return
		}

		seen := make(map[string]bool)
		var employees []string
		for _, row := range table[1:] {
			if empIdx >= len(row) {
				continue
			}
			name := strings.TrimSpace(row[empIdx])
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			employees = append(employees, name)
		}
		sort.Strings(employees)

		f := excelize.NewFile()
		defer f.Close()
		f.SetSheetName(f.GetSheetName(0), constants.SheetEmployeeTargets)
		f.SetCellValue(constants.SheetEmployeeTargets, "A1", constants.ColEmployee)
		f.SetCellValue(constants.SheetEmployeeTargets, "B1", constants.ColTarget)
		for i, name := range employees {
			f.SetCellValue(constants.SheetEmployeeTargets, fmt.Sprintf("A%d", i+2), name)
		}
		if _, err := f.NewSheet(constants.SheetBUTargets); err != nil {
			api.RespondWithError(w, http.StatusInternalServerError, "failed to build template: "+err.Error())
			return
		}
		f.SetCellValue(constants.SheetBUTargets, "A1", constants.ColBU)
		f.SetCellValue(constants.SheetBUTargets, "B1", constants.ColTarget)
		for i, bu := range rules.BULabels() {
			f.SetCellValue(constants.SheetBUTargets, fmt.Sprintf("A%d", i+2), bu)
		}

		w.Header().Set(constants.ContentTypeHeader, constants.ContentTypeXLSX)
		w.Header().Set("Content-Disposition", `attachment; filename="target_template.xlsx"`)
		if err := f.Write(w); err != nil {
			api.LogError("target template write failed: %v", err)
		}
	}
}
