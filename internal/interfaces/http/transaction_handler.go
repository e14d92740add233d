package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cleanstock-api/internal/application/dto"
	"github.com/tu-usuario/cleanstock-api/internal/application/transactions"
	"github.com/tu-usuario/cleanstock-api/internal/domain"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
)

// TransactionHandler maneja el registro y consulta del historial de transacciones (protegido).
type TransactionHandler struct {
	post   *transactions.PostTransactionUseCase
	query  *transactions.QueryUseCase
	report *transactions.ReportUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(post *transactions.PostTransactionUseCase, query *transactions.QueryUseCase, report *transactions.ReportUseCase) *TransactionHandler {
	return &TransactionHandler{post: post, query: query, report: report}
}

// normalizeType acepta los alias históricos KELUAR/MASUK además de OUT/IN.
func normalizeType(raw string) entity.MovementType {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "KELUAR", string(entity.MovementOUT):
		return entity.MovementOUT
	case "MASUK", string(entity.MovementIN):
		return entity.MovementIN
	default:
		return entity.MovementType(raw)
	}
}

// Post godoc
// @Summary      Registrar transacción de inventario
// @Description  Salida (OUT/KELUAR) o devolución (IN/MASUK) de un consumible o de una máquina serializada.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostTransactionRequest  true  "namaPeminta, areaKebutuhan, tipe, barangId; jumlah para consumibles, asetId para máquinas"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Post(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.PostTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.post.Post(c.Context(), transactions.PostInput{
		Requester: in.Requester,
		Area:      in.Area,
		Quantity:  in.Quantity,
		Type:      normalizeType(in.Type),
		ItemID:    in.ItemID,
		AssetID:   in.AssetID,
		UserID:    userID,
	})
	if err != nil {
		return h.mapPostError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(transactions.ToResponse(entry))
}

// mapPostError traduce los errores del motor de transacciones a respuestas HTTP.
// Las referencias rotas (artículo o activo inexistente) son errores del cliente, no 404.
func (h *TransactionHandler) mapPostError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "el artículo indicado no existe"})
	case errors.Is(err, domain.ErrAssetNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ASSET_NOT_FOUND", Message: "el activo indicado no existe o no pertenece al artículo"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la salida"})
	case errors.Is(err, domain.ErrAssetUnavailable):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ASSET_UNAVAILABLE", Message: "el activo no está disponible para préstamo"})
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de transacción inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

// List godoc
// @Summary      Historial completo de transacciones
// @Description  Más recientes primero, con artículo, activo y usuario expandidos.
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.TransactionDetailResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	out, err := h.query.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Recent godoc
// @Summary      Transacciones recientes
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        limit  path  int  false  "cantidad de entradas (por defecto 5)"
// @Success      200  {array}   dto.TransactionDetailResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/transactions/recent/{limit} [get]
func (h *TransactionHandler) Recent(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Params("limit"))
	out, err := h.query.Recent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// ExportReport godoc
// @Summary      Exportar historial por rango de fechas
// @Description  Genera un archivo XLSX o PDF con las transacciones del período.
// @Tags         transactions
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        start   query  string  true   "fecha inicial YYYY-MM-DD"
// @Param        end     query  string  true   "fecha final YYYY-MM-DD"
// @Param        format  query  string  false  "xlsx (por defecto) o pdf"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions/report [get]
func (h *TransactionHandler) ExportReport(c *fiber.Ctx) error {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start debe ser YYYY-MM-DD"})
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end debe ser YYYY-MM-DD"})
	}
	// El rango incluye el día final completo.
	end = end.Add(24*time.Hour - time.Nanosecond)

	format := c.Query("format", transactions.FormatXLSX)
	file, err := h.report.Export(start, end, format)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango o formato de reporte inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	return c.Send(file.Content)
}
