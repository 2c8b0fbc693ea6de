package db_test

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"goalapp/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Account struct {
	ID        string `gorm:"primaryKey;autoIncrement:false"`
	Username  string
	UpdatedAt time.Time
}

var _ = Describe("GormDB", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.GormDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Create", func() {
		var record *Account

		BeforeEach(func() {
			record = &Account{ID: "a-1", Username: "Alice"}
		})

		JustBeforeEach(func() {
			err = testDB.Create(ctx, record)
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^INSERT INTO "accounts" .*`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should save the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a unique constraint is violated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^INSERT INTO "accounts" .*`).
					WillReturnError(&pgconn.PgError{
						Code:           "23505",
						ConstraintName: "accounts_username_key",
					})
				mock.ExpectRollback()
			})

			It("should return a duplicate key error naming the constraint", func() {
				Expect(errors.Is(err, db.ErrDuplicateKey)).To(BeTrue())

				var dupErr *db.DuplicateKeyError
				Expect(errors.As(err, &dupErr)).To(BeTrue())
				Expect(dupErr.Constraint).To(Equal("accounts_username_key"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the insert fails for another reason", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^INSERT INTO "accounts" .*`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(ContainSubstring("insert to table")))
				Expect(errors.Is(err, sql.ErrConnDone)).To(BeTrue())
				Expect(errors.Is(err, db.ErrDuplicateKey)).To(BeFalse())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE username = \$1 ORDER BY "accounts"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow("a-1", "Alice"))
			})

			It("should return the correct record", func() {
				var result Account
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal("a-1"))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE username = \$1 ORDER BY "accounts"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Account
				err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE username.*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return a wrapped error", func() {
				var result Account
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
				Expect(err).To(MatchError(ContainSubstring(`getting record by "username"`)))
			})
		})
	})

	Describe("Exists", func() {
		var (
			exists    bool
			excludeID string
		)

		BeforeEach(func() {
			excludeID = ""
		})

		JustBeforeEach(func() {
			exists, err = testDB.Exists(ctx, &Account{}, "username", "Alice", excludeID)
		})

		When("a matching row is present", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts" WHERE username = \$1`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			})

			It("should report true", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an id is excluded", func() {
			BeforeEach(func() {
				excludeID = "a-1"
				mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts" WHERE username = \$1 AND id <> \$2`).
					WithArgs("Alice", "a-1").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			})

			It("should leave that row out of the check", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeFalse())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the count fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts".*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(ContainSubstring(`counting records by "username"`)))
				Expect(exists).To(BeFalse())
			})
		})
	})

	Describe("UpdateByID", func() {
		JustBeforeEach(func() {
			err = testDB.UpdateByID(ctx, &Account{}, "a-1", map[string]any{"username": "Alicia"})
		})

		When("the row exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "accounts" SET .*"username"=.* WHERE id = \$\d+`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should update it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "accounts" SET .* WHERE id = \$\d+`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should return ErrNotFound", func() {
				Expect(err).To(Equal(db.ErrNotFound))
			})
		})

		When("the new value collides with another row", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "accounts" SET .* WHERE id = \$\d+`).
					WillReturnError(&pgconn.PgError{
						Code:           "23505",
						ConstraintName: "accounts_username_key",
					})
				mock.ExpectRollback()
			})

			It("should return a duplicate key error", func() {
				Expect(errors.Is(err, db.ErrDuplicateKey)).To(BeTrue())
				Expect(err).To(MatchError(ContainSubstring(`updating record "a-1"`)))
			})
		})
	})
})
