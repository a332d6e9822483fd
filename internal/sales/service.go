package sales

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gym_admin/internal/apperr"
	"gym_admin/internal/catalog"
	"gym_admin/internal/clients"
	"gym_admin/internal/payments"
)

// Service registers point-of-sale transactions. Stock is validated and
// decremented through the catalog service; client references are validated
// against the clients service.
type Service struct {
	storage Storage
	catalog *catalog.Service
	clients *clients.Service
	logger  *zap.Logger
}

// SalesMetadata acompaña los resultados de búsqueda con totales por medio
// de pago.
type SalesMetadata struct {
	Quantity    int             `json:"quantity"`
	Cash        int             `json:"cash"`
	Card        int             `json:"card"`
	Transfer    int             `json:"transfer"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewService creates a new sales Service.
func NewService(storage Storage, catalogSvc *catalog.Service, clientSvc *clients.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{
		storage: storage,
		catalog: catalogSvc,
		clients: clientSvc,
		logger:  logger,
	}
}

// Create validates the request, snapshots prices, decrements stock and
// stores the sale. Validation reports every failing field at once; nothing
// mutates until the whole request passes.
func (s *Service) Create(req Request) (*Receipt, error) {
	errs := apperr.FieldErrors{}
	if req.SedeID == "" {
		errs["sede_id"] = "la sede es obligatoria"
	}
	if !payments.Valid(req.PaymentMethod) {
		errs["payment_method"] = "medio de pago inválido"
	}
	if len(req.Lines) == 0 {
		errs["lines"] = "la venta debe tener al menos un producto"
	}
	if req.GlobalDiscount.IsNegative() {
		errs["global_discount"] = "el descuento no puede ser negativo"
	}
	if req.ClientID != "" {
		if _, err := s.clients.Get(req.ClientID); err != nil {
			errs["client_id"] = "el cliente no existe"
		}
	}

	lines := make([]SaleLine, 0, len(req.Lines))
	total := decimal.Zero
	for i, rl := range req.Lines {
		field := "lines[" + strconv.Itoa(i) + "]"
		p, err := s.catalog.GetProduct(rl.ProductID)
		if err != nil {
			errs[field+".product_id"] = "el producto no existe"
			continue
		}
		if rl.Quantity <= 0 {
			errs[field+".quantity"] = "la cantidad debe ser mayor a cero"
			continue
		}
		if rl.Quantity > p.Stock {
			errs[field+".quantity"] = fmt.Sprintf("stock insuficiente para %s (disponible: %d)", p.Code, p.Stock)
			continue
		}
		if rl.Discount.IsNegative() {
			errs[field+".discount"] = "el descuento no puede ser negativo"
			continue
		}
		line := SaleLine{
			ProductID: p.ID,
			Code:      p.Code,
			Name:      p.Name,
			UnitPrice: p.SalePrice,
			Quantity:  rl.Quantity,
			Discount:  rl.Discount,
		}
		lines = append(lines, line)
		total = total.Add(line.Subtotal())
	}
	if len(errs) > 0 {
		return nil, errs
	}
	total = total.Sub(req.GlobalDiscount)

	// Descuenta stock línea por línea; si una falla, repone lo anterior.
	for i, line := range lines {
		if _, err := s.catalog.AdjustStock(line.ProductID, -line.Quantity); err != nil {
			for _, done := range lines[:i] {
				if _, rbErr := s.catalog.AdjustStock(done.ProductID, done.Quantity); rbErr != nil {
					s.logger.Error("failed to restore stock after aborted sale",
						zap.String("product_id", done.ProductID), zap.Error(rbErr))
				}
			}
			if errors.Is(err, catalog.ErrInsufficientStock) {
				return nil, apperr.FieldErrors{"lines": err.Error()}
			}
			return nil, fmt.Errorf("failed to adjust stock: %w", err)
		}
	}

	sale := &Sale{
		ID:             uuid.NewString(),
		ClientID:       req.ClientID,
		SedeID:         req.SedeID,
		PaymentMethod:  req.PaymentMethod,
		Lines:          lines,
		GlobalDiscount: req.GlobalDiscount,
		Total:          total,
		Notes:          req.Notes,
		CreatedAt:      time.Now(),
	}
	if err := s.storage.Set(sale); err != nil {
		s.logger.Error("failed to save sale", zap.String("sale_id", sale.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	s.logger.Info("sale registered",
		zap.String("sale_id", sale.ID),
		zap.String("sede_id", sale.SedeID),
		zap.String("payment_method", string(sale.PaymentMethod)),
		zap.Int("lines", len(sale.Lines)),
		zap.String("total", sale.Total.String()),
	)
	return &Receipt{SaleID: sale.ID, Total: sale.Total, CreatedAt: sale.CreatedAt}, nil
}

// SubmitSale registers a sale with the same signature the HTTP client
// exposes, so an embedded deployment can plug the service straight into
// the POS cart. The context is accepted for symmetry and ignored: local
// calls do not block.
func (s *Service) SubmitSale(_ context.Context, req Request) (*Receipt, error) {
	return s.Create(req)
}

// Get returns a single sale by ID.
func (s *Service) Get(id string) (*Sale, error) {
	return s.storage.Read(id)
}

// Search filters sales by client and/or sede and computes the metadata the
// listing shows alongside the results.
func (s *Service) Search(clientID, sedeID string) ([]*Sale, SalesMetadata, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		s.logger.Error("failed to get all sales from storage", zap.Error(err))
		return nil, SalesMetadata{}, fmt.Errorf("failed to retrieve sales: %w", err)
	}

	filtered := make([]*Sale, 0)
	metadata := SalesMetadata{TotalAmount: decimal.Zero}
	for _, sale := range all {
		if clientID != "" && sale.ClientID != clientID {
			continue
		}
		if sedeID != "" && sale.SedeID != sedeID {
			continue
		}
		filtered = append(filtered, sale)

		metadata.Quantity++
		metadata.TotalAmount = metadata.TotalAmount.Add(sale.Total)
		switch sale.PaymentMethod {
		case payments.Cash:
			metadata.Cash++
		case payments.Card:
			metadata.Card++
		case payments.Transfer:
			metadata.Transfer++
		}
	}

	s.logger.Info("sales search completed",
		zap.String("client_filter", clientID),
		zap.String("sede_filter", sedeID),
		zap.Int("results_count", len(filtered)),
	)
	return filtered, metadata, nil
}

// TotalBetween sums the totals of sales registered in [from, to).
func (s *Service) TotalBetween(from, to time.Time) (decimal.Decimal, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, sale := range all {
		if sale.CreatedAt.Before(from) || !sale.CreatedAt.Before(to) {
			continue
		}
		sum = sum.Add(sale.Total)
	}
	return sum, nil
}
