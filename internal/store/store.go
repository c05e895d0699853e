package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"

	"github.com/iurnickita/saleshub/internal/model"
	"github.com/iurnickita/saleshub/internal/store/config"
	"github.com/iurnickita/saleshub/internal/store/migrations"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks

type Store interface {
	Begin(ctx context.Context) (Tx, error)
	SuggestedValueGetAll(ctx context.Context) ([]model.SuggestedValue, error)
	Close() error
}

// Tx - единица работы в рамках одного запроса.
// Изменения фиксируются только вызовом SaveChanges.
type Tx interface {
	OrderGetByID(ctx context.Context, id int64) (model.Order, error)
	OrderGetByIDWithPaymentTerms(ctx context.Context, id int64) (model.Order, error)
	OrderAdd(ctx context.Context, order model.Order) (model.Order, error)
	OrderUpdate(ctx context.Context, order model.Order) error
	OrderDelete(ctx context.Context, order model.Order) error
	CustomerGetByID(ctx context.Context, id int64) (model.Customer, error)
	PaymentTermGetByID(ctx context.Context, id int64) (model.PaymentTerm, error)
	PaymentTermAdd(ctx context.Context, term model.PaymentTerm) (model.PaymentTerm, error)
	PaymentTermUpdate(ctx context.Context, term model.PaymentTerm) error
	SaveChanges(ctx context.Context) error
	Rollback(ctx context.Context) error
}

var (
	ErrNoRows = errors.New("no rows")
)

const (
	pgForeignKeyViolation = "23503"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"o.id",
	"o.customer_id",
	"o.order_number",
	"o.contract_weight",
	"o.contract_amount",
	"o.order_date",
	"o.is_active",
	"o.contract_currency_type_id",
	"o.payment_terms_override",
	"o.intent_comments",
	"o.invoice_comments",
	"o.header_comments",
	"o.footer_comments",
}

type store struct {
	database *sql.DB
}

func NewStore(cfg config.Config) (Store, error) {
	db, err := sql.Open("pgx", cfg.DBDsn)
	if err != nil {
		return nil, err
	}

	// Схема базы
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err = goose.SetDialect("postgres"); err != nil {
		return nil, err
	}
	err = goose.Up(db, ".")
	if err != nil && !errors.Is(err, goose.ErrNoNextVersion) {
		return nil, err
	}

	return &store{
		database: db,
	}, nil
}

func (store *store) Close() error {
	return store.database.Close()
}

func (store *store) Begin(ctx context.Context) (Tx, error) {
	sqlTx, err := store.database.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &tx{tx: sqlTx}, nil
}

func (store *store) SuggestedValueGetAll(ctx context.Context) ([]model.SuggestedValue, error) {
	query, args, err := psql.Select("id", "field", "value").
		From("suggested_value").
		OrderBy("field", "value").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := store.database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var values []model.SuggestedValue
	for rows.Next() {
		var value model.SuggestedValue
		if err := rows.Scan(&value.ID, &value.Field, &value.Value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	return values, rows.Err()
}

type tx struct {
	tx *sql.Tx
}

func (tx *tx) SaveChanges(_ context.Context) error {
	return tx.tx.Commit()
}

func (tx *tx) Rollback(_ context.Context) error {
	err := tx.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}

func (tx *tx) OrderGetByID(ctx context.Context, id int64) (model.Order, error) {
	// Только ссылки на условия оплаты, без их значений
	query, args, err := psql.Select(orderColumns...).
		Columns("o.payment_term1_id", "NULL", "o.payment_term2_id", "NULL").
		From("sales_order AS o").
		Where(sq.Eq{"o.id": id}).
		ToSql()
	if err != nil {
		return model.Order{}, err
	}
	return scanOrder(tx.tx.QueryRowContext(ctx, query, args...))
}

func (tx *tx) OrderGetByIDWithPaymentTerms(ctx context.Context, id int64) (model.Order, error) {
	query, args, err := psql.Select(orderColumns...).
		Columns("pt1.id", "pt1.split_percentage", "pt2.id", "pt2.split_percentage").
		From("sales_order AS o").
		LeftJoin("payment_term AS pt1 ON pt1.id = o.payment_term1_id").
		LeftJoin("payment_term AS pt2 ON pt2.id = o.payment_term2_id").
		Where(sq.Eq{"o.id": id}).
		ToSql()
	if err != nil {
		return model.Order{}, err
	}
	return scanOrder(tx.tx.QueryRowContext(ctx, query, args...))
}

func scanOrder(row *sql.Row) (model.Order, error) {
	var order model.Order
	var term1ID, term2ID sql.NullInt64
	var term1Split, term2Split decimal.NullDecimal
	err := row.Scan(&order.ID,
		&order.CustomerID,
		&order.OrderNumber,
		&order.ContractWeight,
		&order.ContractAmount,
		&order.OrderDate,
		&order.IsActive,
		&order.ContractCurrencyTypeID,
		&order.PaymentTermsOverride,
		&order.IntentComments,
		&order.InvoiceComments,
		&order.HeaderComments,
		&order.FooterComments,
		&term1ID,
		&term1Split,
		&term2ID,
		&term2Split)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, ErrNoRows
		}
		return model.Order{}, err
	}

	// Пустой слот остается нулевым значением
	order.PaymentTerm1 = model.PaymentTerm{ID: term1ID.Int64, SplitPercentage: term1Split.Decimal}
	order.PaymentTerm2 = model.PaymentTerm{ID: term2ID.Int64, SplitPercentage: term2Split.Decimal}
	return order, nil
}

func (tx *tx) OrderAdd(ctx context.Context, order model.Order) (model.Order, error) {
	query, args, err := psql.Insert("sales_order").
		Columns("customer_id",
			"order_number",
			"contract_weight",
			"contract_amount",
			"order_date",
			"is_active",
			"contract_currency_type_id",
			"payment_terms_override",
			"intent_comments",
			"invoice_comments",
			"header_comments",
			"footer_comments",
			"payment_term1_id",
			"payment_term2_id").
		Values(order.CustomerID,
			order.OrderNumber,
			order.ContractWeight,
			order.ContractAmount,
			order.OrderDate,
			order.IsActive,
			order.ContractCurrencyTypeID,
			order.PaymentTermsOverride,
			order.IntentComments,
			order.InvoiceComments,
			order.HeaderComments,
			order.FooterComments,
			termRef(order.PaymentTerm1),
			termRef(order.PaymentTerm2)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return model.Order{}, err
	}

	err = tx.tx.QueryRowContext(ctx, query, args...).Scan(&order.ID)
	if err != nil {
		return model.Order{}, translate(err)
	}
	return order, nil
}

func (tx *tx) OrderUpdate(ctx context.Context, order model.Order) error {
	query, args, err := psql.Update("sales_order").
		Set("order_number", order.OrderNumber).
		Set("contract_weight", order.ContractWeight).
		Set("contract_amount", order.ContractAmount).
		Set("order_date", order.OrderDate).
		Set("is_active", order.IsActive).
		Set("contract_currency_type_id", order.ContractCurrencyTypeID).
		Set("payment_terms_override", order.PaymentTermsOverride).
		Set("intent_comments", order.IntentComments).
		Set("invoice_comments", order.InvoiceComments).
		Set("header_comments", order.HeaderComments).
		Set("footer_comments", order.FooterComments).
		Set("payment_term1_id", termRef(order.PaymentTerm1)).
		Set("payment_term2_id", termRef(order.PaymentTerm2)).
		Where(sq.Eq{"id": order.ID}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := tx.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	return requireAffected(result)
}

func (tx *tx) OrderDelete(ctx context.Context, order model.Order) error {
	query, args, err := psql.Delete("sales_order").
		Where(sq.Eq{"id": order.ID}).
		ToSql()
	if err != nil {
		return err
	}
	result, err := tx.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if err = requireAffected(result); err != nil {
		return err
	}

	// Условия оплаты принадлежат только этому заказу
	var termIDs []int64
	for _, term := range []model.PaymentTerm{order.PaymentTerm1, order.PaymentTerm2} {
		if term.Persisted() {
			termIDs = append(termIDs, term.ID)
		}
	}
	if len(termIDs) == 0 {
		return nil
	}
	query, args, err = psql.Delete("payment_term").
		Where(sq.Eq{"id": termIDs}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.tx.ExecContext(ctx, query, args...)
	return err
}

func (tx *tx) CustomerGetByID(ctx context.Context, id int64) (model.Customer, error) {
	query, args, err := psql.Select("c.id", "c.name", "sc.id", "sc.name").
		From("customer AS c").
		Join("selling_company AS sc ON sc.id = c.selling_company_id").
		Where(sq.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return model.Customer{}, err
	}

	var customer model.Customer
	err = tx.tx.QueryRowContext(ctx, query, args...).Scan(&customer.ID,
		&customer.Name,
		&customer.SellingCompany.ID,
		&customer.SellingCompany.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Customer{}, ErrNoRows
		}
		return model.Customer{}, err
	}
	return customer, nil
}

func (tx *tx) PaymentTermGetByID(ctx context.Context, id int64) (model.PaymentTerm, error) {
	query, args, err := psql.Select("id", "split_percentage").
		From("payment_term").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.PaymentTerm{}, err
	}

	var term model.PaymentTerm
	err = tx.tx.QueryRowContext(ctx, query, args...).Scan(&term.ID, &term.SplitPercentage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.PaymentTerm{}, ErrNoRows
		}
		return model.PaymentTerm{}, err
	}
	return term, nil
}

func (tx *tx) PaymentTermAdd(ctx context.Context, term model.PaymentTerm) (model.PaymentTerm, error) {
	query, args, err := psql.Insert("payment_term").
		Columns("split_percentage").
		Values(term.SplitPercentage).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return model.PaymentTerm{}, err
	}

	err = tx.tx.QueryRowContext(ctx, query, args...).Scan(&term.ID)
	if err != nil {
		return model.PaymentTerm{}, err
	}
	return term, nil
}

func (tx *tx) PaymentTermUpdate(ctx context.Context, term model.PaymentTerm) error {
	query, args, err := psql.Update("payment_term").
		Set("split_percentage", term.SplitPercentage).
		Where(sq.Eq{"id": term.ID}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := tx.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func termRef(term model.PaymentTerm) sql.NullInt64 {
	return sql.NullInt64{Int64: term.ID, Valid: term.Persisted()}
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoRows
	}
	return nil
}

// Ссылка на несуществующую строку (клиент, условие оплаты)
func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s", ErrNoRows, pgErr.ConstraintName)
	}
	return err
}
