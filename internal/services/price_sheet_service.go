package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"tire-service/internal/dto"
	apperrors "tire-service/pkg/errors"
	"tire-service/pkg/session"
)

const (
	priceSheetName    = "Прайс"
	headerSearchDepth = 10
	colHeaderID       = "id"
	colHeaderService  = "услуга"
	colHeaderPrice    = "цена"
)

var priceSheetHeaders = []string{"ID", "Услуга", "Вид", "Тип колеса", "Цена"}

// Excel в русской локали разделяет разряды неразрывным пробелом.
var priceCleaner = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "", ",", ".")

type PriceSheetService struct {
	backend ContractBackend
	catalog *CatalogService
	logger  *zap.Logger
}

func NewPriceSheetService(backend ContractBackend, catalog *CatalogService, logger *zap.Logger) *PriceSheetService {
	return &PriceSheetService{backend: backend, catalog: catalog, logger: logger.Named("price_sheet_service")}
}

// Template - пустой шаблон прайса, который выдает бэкенд.
func (s *PriceSheetService) Template(ctx context.Context, sess *session.Session) ([]byte, error) {
	return s.backend.PriceTemplate(ctx, sess)
}

// Upload проверяет файл прайса и только потом отправляет его в бэкенд.
// Файл с ошибками в строках отклоняется целиком, ошибки возвращаются списком.
func (s *PriceSheetService) Upload(ctx context.Context, sess *session.Session, contractID int64, filename string, content []byte) (*dto.PriceUploadResultDTO, error) {
	rows, rowErrors, err := ParsePriceSheet(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	if len(rowErrors) > 0 {
		s.logger.Info("Прайс отклонен: ошибки в строках",
			zap.Int64("contract_id", contractID),
			zap.Int("errors", len(rowErrors)),
		)
		return nil, apperrors.NewHttpError(
			http.StatusUnprocessableEntity,
			fmt.Sprintf("В файле прайса ошибок: %d", len(rowErrors)),
			nil,
		).WithDetails(rowErrors)
	}

	if err := s.backend.UploadPrices(ctx, sess, contractID, filename, bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("не удалось загрузить прайс договора %d: %w", contractID, err)
	}
	s.catalog.Invalidate(ctx, contractID)

	s.logger.Info("Прайс договора загружен", zap.Int64("contract_id", contractID), zap.Int("rows", len(rows)))
	return &dto.PriceUploadResultDTO{ContractID: contractID, Rows: rows}, nil
}

// Export выгружает текущий прайс договора в xlsx. Файл можно поправить и загрузить обратно.
func (s *PriceSheetService) Export(ctx context.Context, sess *session.Session, contractID int64) ([]byte, error) {
	services, err := s.catalog.Services(ctx, sess, contractID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", priceSheetName); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(priceSheetName, "A1", &priceSheetHeaders); err != nil {
		return nil, err
	}
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellStyle(priceSheetName, "A1", "E1", style)

	for i, svc := range services {
		row := []interface{}{svc.ID, svc.Name, svc.Kind, svc.WheelType, svc.Price.String()}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(priceSheetName, cell, &row); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(priceSheetName, "B", "B", 45)
	_ = f.SetColWidth(priceSheetName, "C", "D", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

type priceColumns struct {
	id, name, price int
}

// ParsePriceSheet читает первый лист книги. Строка заголовка ищется среди первых
// строк по колонкам ID, Услуга и Цена; номера строк в ошибках - как в Excel.
func ParsePriceSheet(r io.Reader) ([]dto.PriceRowDTO, []dto.PriceRowErrorDTO, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, apperrors.NewInvalidInputError("Файл не является книгой Excel")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, apperrors.NewInvalidInputError("В книге нет листов")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка чтения листа %q: %w", sheets[0], err)
	}

	headerIdx, cols, ok := findPriceHeader(rows)
	if !ok {
		return nil, nil, apperrors.NewInvalidInputError("Не найдена строка заголовка с колонками ID, Услуга, Цена")
	}

	var (
		out    []dto.PriceRowDTO
		errs   []dto.PriceRowErrorDTO
		seenAt = make(map[int64]int)
	)
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		rawID := cellAt(row, cols.id)
		rawPrice := cellAt(row, cols.price)
		name := cellAt(row, cols.name)
		if rawID == "" && rawPrice == "" && name == "" {
			continue
		}

		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || id <= 0 {
			errs = append(errs, dto.PriceRowErrorDTO{Row: lineNum, Message: fmt.Sprintf("неверный ID услуги %q", rawID)})
			continue
		}
		if prev, dup := seenAt[id]; dup {
			errs = append(errs, dto.PriceRowErrorDTO{Row: lineNum, Message: fmt.Sprintf("услуга %d уже указана в строке %d", id, prev)})
			continue
		}

		price, err := decimal.NewFromString(priceCleaner.Replace(rawPrice))
		if err != nil {
			errs = append(errs, dto.PriceRowErrorDTO{Row: lineNum, Message: fmt.Sprintf("неверная цена %q", rawPrice)})
			continue
		}
		if !price.IsPositive() {
			errs = append(errs, dto.PriceRowErrorDTO{Row: lineNum, Message: "цена должна быть больше нуля"})
			continue
		}

		seenAt[id] = lineNum
		out = append(out, dto.PriceRowDTO{Row: lineNum, ServiceID: id, Name: name, Price: price})
	}

	if len(out) == 0 && len(errs) == 0 {
		return nil, nil, apperrors.NewInvalidInputError("В файле нет строк с ценами")
	}
	return out, errs, nil
}

func findPriceHeader(rows [][]string) (int, priceColumns, bool) {
	for rIdx, row := range rows {
		if rIdx >= headerSearchDepth {
			break
		}
		cols := priceColumns{id: -1, name: -1, price: -1}
		for cIdx, cell := range row {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case colHeaderID:
				cols.id = cIdx
			case colHeaderService:
				cols.name = cIdx
			case colHeaderPrice:
				cols.price = cIdx
			}
		}
		if cols.id != -1 && cols.name != -1 && cols.price != -1 {
			return rIdx, cols, true
		}
	}
	return -1, priceColumns{}, false
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
