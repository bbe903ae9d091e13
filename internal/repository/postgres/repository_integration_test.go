package postgres_test

import (
	"testing"
	"time"

	gorm "github.com/jinzhu/gorm"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"

	"orders-api/internal/models"
	repo "orders-api/internal/repository"
	pg "orders-api/internal/repository/postgres"
)

type pgEnv struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	DB       *gorm.DB
	R        *repo.Repository
}

func upPostgres(t *testing.T) *pgEnv {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not available: %v", err)
	}

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_DB=orders",
		"POSTGRES_USER=app",
		"POSTGRES_PASSWORD=app",
	})
	require.NoError(t, err)

	env := &pgEnv{pool: pool, resource: resource}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	require.NoError(t, pool.Retry(func() error {
		hostPort := resource.GetPort("5432/tcp")
		db, err := pg.ConnectDB(pg.Config{
			Host:     "localhost",
			Port:     hostPort,
			Username: "app",
			Password: "app",
			DbName:   "orders",
			SslMode:  "disable",
		})
		if err != nil {
			return err
		}
		env.DB = db

		if err := pg.Migrate(db); err != nil {
			return err
		}

		env.R = repo.NewRepository(db)
		return nil
	}))

	return env
}

func mustUser(t *testing.T, env *pgEnv, email string) models.User {
	t.Helper()
	u := models.User{Email: email, Password: "hash", Roles: models.Roles{models.RoleUser}}
	require.NoError(t, env.R.UserPostgres.Create(&u))
	return u
}

func order(userID uint, withLines bool) models.Order {
	o := models.Order{
		UserID:      userID,
		Name:        "Test Order",
		OrderNumber: 1001,
		OrderDate:   time.Date(2025, 5, 26, 17, 13, 41, 0, time.UTC),
		Status:      models.StatusPending,
		Currency:    "EUR",
	}
	if withLines {
		o.OrderLines = []models.OrderLine{
			{Amount: 2, ProductName: "Widget A"},
			{Amount: 1.5, ProductName: "Widget B"},
		}
	}
	return o
}

func Test_Postgres_CreateGet_Positive(t *testing.T) {
	env := upPostgres(t)

	owner := mustUser(t, env, "owner@example.com")

	o := order(owner.ID, true)
	require.NoError(t, env.R.OrderPostgres.Create(&o))
	require.NotZero(t, o.ID)

	got, err := env.R.OrderPostgres.Get(o.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, "Test Order", got.Name)
	require.Len(t, got.OrderLines, 2)
	require.Equal(t, "Widget A", got.OrderLines[0].ProductName)
	require.True(t, got.OrderLines[0].ID < got.OrderLines[1].ID)
}

func Test_Postgres_Get_OwnerScoped(t *testing.T) {
	env := upPostgres(t)

	owner := mustUser(t, env, "owner@example.com")
	other := mustUser(t, env, "other@example.com")

	o := order(owner.ID, false)
	require.NoError(t, env.R.OrderPostgres.Create(&o))

	_, err := env.R.OrderPostgres.Get(o.ID, other.ID)
	require.True(t, gorm.IsRecordNotFoundError(err))
}

func Test_Postgres_Update_ReplacesLines(t *testing.T) {
	env := upPostgres(t)

	owner := mustUser(t, env, "owner@example.com")
	o := order(owner.ID, true)
	require.NoError(t, env.R.OrderPostgres.Create(&o))

	// Header-only update keeps the lines.
	o.Name = "renamed"
	require.NoError(t, env.R.OrderPostgres.Update(&o, nil))
	got, err := env.R.OrderPostgres.Get(o.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, "renamed", got.Name)
	require.Len(t, got.OrderLines, 2)

	// A replacement drops the old lines entirely.
	repl := []models.OrderLine{{Amount: 9, ProductName: "Widget C"}}
	require.NoError(t, env.R.OrderPostgres.Update(&o, &repl))
	got, err = env.R.OrderPostgres.Get(o.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, got.OrderLines, 1)
	require.Equal(t, "Widget C", got.OrderLines[0].ProductName)

	// And an empty replacement leaves none.
	empty := []models.OrderLine{}
	require.NoError(t, env.R.OrderPostgres.Update(&o, &empty))
	got, err = env.R.OrderPostgres.Get(o.ID, owner.ID)
	require.NoError(t, err)
	require.Empty(t, got.OrderLines)
}

func Test_Postgres_Delete_Cascades(t *testing.T) {
	env := upPostgres(t)

	owner := mustUser(t, env, "owner@example.com")
	o := order(owner.ID, true)
	require.NoError(t, env.R.OrderPostgres.Create(&o))
	require.NoError(t, env.R.OrderPostgres.AddTasks(&o, []models.Task{{Name: "call customer"}}))

	require.NoError(t, env.R.OrderPostgres.Delete(&o))

	_, err := env.R.OrderPostgres.Get(o.ID, owner.ID)
	require.True(t, gorm.IsRecordNotFoundError(err))

	var lineCount, taskCount int
	require.NoError(t, env.DB.Model(&models.OrderLine{}).Where("order_id = ?", o.ID).Count(&lineCount).Error)
	require.NoError(t, env.DB.Model(&models.Task{}).Where("order_id = ?", o.ID).Count(&taskCount).Error)
	require.Zero(t, lineCount)
	require.Zero(t, taskCount)
}

func Test_Postgres_Tasks_AppendUpdateDelete(t *testing.T) {
	env := upPostgres(t)

	owner := mustUser(t, env, "owner@example.com")
	o := order(owner.ID, false)
	require.NoError(t, env.R.OrderPostgres.Create(&o))

	exec := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, env.R.OrderPostgres.AddTasks(&o, []models.Task{{Name: "first", ExecutionDate: &exec}}))
	require.NoError(t, env.R.OrderPostgres.AddTasks(&o, []models.Task{{Name: "second"}}))

	got, err := env.R.OrderPostgres.Get(o.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 2)
	require.Equal(t, "first", got.Tasks[0].Name)

	// Clearing the execution date must persist the null.
	task := got.Tasks[0]
	task.ExecutionDate = nil
	require.NoError(t, env.R.OrderPostgres.UpdateTask(&task))

	got, err = env.R.OrderPostgres.Get(o.ID, owner.ID)
	require.NoError(t, err)
	require.Nil(t, got.Tasks[0].ExecutionDate)

	require.NoError(t, env.R.OrderPostgres.DeleteTask(&got.Tasks[0]))
	got, err = env.R.OrderPostgres.Get(o.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	require.Equal(t, "second", got.Tasks[0].Name)
}

func Test_Postgres_User_UniqueEmail(t *testing.T) {
	env := upPostgres(t)

	mustUser(t, env, "dup@example.com")

	u := models.User{Email: "dup@example.com", Password: "hash", Roles: models.Roles{models.RoleUser}}
	err := env.R.UserPostgres.Create(&u)
	require.Error(t, err)
	require.True(t, pg.IsUniqueViolation(err))
}
