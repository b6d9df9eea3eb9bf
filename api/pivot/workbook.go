package pivot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"SalesPivotSaas/api/constants"
)

// Helper: get file extension
func getFileExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// parseUploadFile reads the first sheet of an uploaded workbook (or a
// whole CSV) into rows of cells.
func parseUploadFile(file multipart.File, ext string) ([][]string, error) {
	switch ext {
	case ".csv":
		r := csv.NewReader(file)
		r.FieldsPerRecord = -1
		return r.ReadAll()
	case ".xlsx":
		f, err := excelize.OpenReader(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return f.GetRows(f.GetSheetName(0))
	case ".xls":
		wb, err := xls.OpenReader(file, "utf-8")
		if err != nil {
			return nil, err
		}
		return readXLSSheet(wb.GetSheet(0))
	}
	return nil, errors.New(constants.ErrUnsupportedFileType)
}

// parseTargetSheets pulls the two named target sheets out of the
// targets workbook. Only .xlsx/.xls files carry named sheets.
func parseTargetSheets(file multipart.File, ext string) (emp, bu [][]string, err error) {
	switch ext {
	case ".xlsx":
		f, err := excelize.OpenReader(file)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		if emp, err = namedSheetRows(f, constants.SheetEmployeeTargets); err != nil {
			return nil, nil, err
		}
		if bu, err = namedSheetRows(f, constants.SheetBUTargets); err != nil {
			return nil, nil, err
		}
		return emp, bu, nil
	case ".xls":
		wb, err := xls.OpenReader(file, "utf-8")
		if err != nil {
			return nil, nil, err
		}
		if emp, err = namedXLSSheetRows(wb, constants.SheetEmployeeTargets); err != nil {
			return nil, nil, err
		}
		if bu, err = namedXLSSheetRows(wb, constants.SheetBUTargets); err != nil {
			return nil, nil, err
		}
		return emp, bu, nil
	}
	return nil, nil, errors.New(constants.ErrUnsupportedFileType)
}

func namedSheetRows(f *excelize.File, name string) ([][]string, error) {
	idx, err := f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf(constants.FormatMissingSheet, name)
	}
	return f.GetRows(name)
}

func namedXLSSheetRows(wb *xls.WorkBook, name string) ([][]string, error) {
	for i := 0; i < wb.NumSheets(); i++ {
		if sheet := wb.GetSheet(i); sheet != nil && sheet.Name == name {
			return readXLSSheet(sheet)
		}
	}
	return nil, fmt.Errorf(constants.FormatMissingSheet, name)
}

func readXLSSheet(sheet *xls.WorkSheet) ([][]string, error) {
	if sheet == nil {
		return nil, errors.New("workbook has no sheets")
	}
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		// Col handles leading gaps, so index from zero to keep columns aligned
		cells := make([]string, 0, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
