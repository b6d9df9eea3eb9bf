package pivot

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"SalesPivotSaas/api"
	"SalesPivotSaas/api/constants"
	"SalesPivotSaas/api/pivot/engine"
)

// datasetRows converts one parsed sales/OB table into engine rows.
// Header cells are trimmed before matching; a missing required column
// fails the whole upload with the column names spelled out.
func datasetRows(table [][]string, label, measureCol string) ([]engine.Row, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%s sheet is empty", label)
	}
	empIdx, codeIdx, measureIdx := -1, -1, -1
	for i, h := range table[0] {
		switch strings.TrimSpace(h) {
		case constants.ColEmployee:
			empIdx = i
		case constants.ColHelios:
			codeIdx = i
		case measureCol:
			measureIdx = i
		}
	}
	var missing []string
	if empIdx < 0 {
		missing = append(missing, constants.ColEmployee)
	}
	if codeIdx < 0 {
		missing = append(missing, constants.ColHelios)
	}
	if measureIdx < 0 {
		missing = append(missing, measureCol)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf(constants.FormatMissingColumns, label, strings.Join(missing, ", "))
	}

	cellAt := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	rows := make([]engine.Row, 0, len(table)-1)
	for _, raw := range table[1:] {
		rows = append(rows, engine.Row{
			Employee: cellAt(raw, empIdx),
			Code:     cellAt(raw, codeIdx),
			Value:    engine.CoerceNumber(cellAt(raw, measureIdx)),
		})
	}
	return rows, nil
}

func openFormFile(r *http.Request, field, errMsg string) (multipart.File, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil || header.Filename == "" {
		return nil, "", errors.New(errMsg)
	}
	return file, getFileExt(header.Filename), nil
}

// Handler: UploadReport
//
// Takes the three workbooks in one multipart request, runs the full
// rollup and answers with the structured report. Any validation
// failure aborts the whole request; nothing partial is returned.
func UploadReport(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrFailedToParseMultipartForm)
			return
		}

		salesFile, salesExt, err := openFormFile(r, constants.FieldSalesFile, constants.ErrNoSalesFile)
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		defer salesFile.Close()
		obFile, obExt, err := openFormFile(r, constants.FieldOBFile, constants.ErrNoOBFile)
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		defer obFile.Close()
		targetsFile, targetsExt, err := openFormFile(r, constants.FieldTargetsFile, constants.ErrNoTargetsFile)
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		defer targetsFile.Close()

		salesTable, err := parseUploadFile(salesFile, salesExt)
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf(constants.FormatUnreadableWorkbook, constants.DatasetSales, err))
			return
		}
		obTable, err := parseUploadFile(obFile, obExt)
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf(constants.FormatUnreadableWorkbook, constants.DatasetOB, err))
			return
		}
		empTable, buTable, err := parseTargetSheets(targetsFile, targetsExt)
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf(constants.FormatUnreadableWorkbook, "targets", err))
			return
		}

		measureCol := eng.Rules().MeasureColumn
		salesRows, err := datasetRows(salesTable, constants.DatasetSales, measureCol)
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		obRows, err := datasetRows(obTable, constants.DatasetOB, measureCol)
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		book, err := engine.NewTargetBook(empTable, buTable)
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		report := eng.BuildReport(salesRows, obRows, book)
		batchID := uuid.New().String()
		api.LogInfo("pivot upload %s: %d sales rows, %d OB rows", batchID, len(salesRows), len(obRows))

		api.RespondWithPayload(w, true, "", map[string]interface{}{
			"batch_id":   batchID,
			"sales_rows": len(salesRows),
			"ob_rows":    len(obRows),
			"report":     report,
		})
	}
}
