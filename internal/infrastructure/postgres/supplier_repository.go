package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/brico-pos/internal/domain/entity"
	"github.com/tu-usuario/brico-pos/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, name, contact_person, email, phone, address, city, postal_code,
	payment_terms, notes, is_active, created_at, updated_at`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func scanSupplier(row scanner) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address, &s.City,
		&s.PostalCode, &s.PaymentTerms, &s.Notes, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List devuelve los proveedores activos, filtrados y ordenados por nombre.
func (r *SupplierRepo) List(ctx context.Context, f repository.SupplierFilter) ([]entity.Supplier, error) {
	q := newQuery(`SELECT ` + supplierColumns + ` FROM suppliers WHERE is_active = TRUE`)
	if f.Search != "" {
		t := like(f.Search)
		q.and(`(name ILIKE ? OR contact_person ILIKE ? OR email ILIKE ?)`, t, t, t)
	}
	if f.City != "" {
		q.and(`city ILIKE ?`, like(f.City))
	}
	q.orderBy(`name ASC`).page(f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, q.sql(), q.bind()...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, *s)
	}
	return list, rows.Err()
}

// GetByID obtiene un proveedor por ID (incluye inactivos).
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	row := r.q.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
	s, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// Create persiste un nuevo proveedor y devuelve el ID asignado.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) (int64, error) {
	query := `
		INSERT INTO suppliers (name, contact_person, email, phone, address, city, postal_code, payment_terms, notes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		s.Name, s.ContactPerson, s.Email, s.Phone, s.Address, s.City, s.PostalCode,
		s.PaymentTerms, s.Notes, s.IsActive,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert supplier: %w", err)
	}
	return id, nil
}

// Update actualiza todos los campos editables de un proveedor.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, contact_person = $3, email = $4, phone = $5, address = $6,
			city = $7, postal_code = $8, payment_terms = $9, notes = $10,
			is_active = $11, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.ContactPerson, s.Email, s.Phone, s.Address, s.City,
		s.PostalCode, s.PaymentTerms, s.Notes, s.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// SoftDelete desactiva el proveedor y conserva la fila (productos y órdenes lo
// referencian).
func (r *SupplierRepo) SoftDelete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE suppliers SET is_active = FALSE, updated_at = now() WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return false, fmt.Errorf("soft delete supplier: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
