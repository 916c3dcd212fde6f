package seed

import (
	"context"
	"testing"

	"github.com/linskybing/adoption-tracker/internal/application"
	"github.com/linskybing/adoption-tracker/internal/repository"
	"github.com/linskybing/adoption-tracker/internal/testutils"
	"github.com/linskybing/adoption-tracker/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
users:
  - name: operator1
    password: operator123
  - name: vet
    password: vetpass123
    role: admin
animals:
  - name: Pamuk
    responsible: operator1
    owner_name: Ayse Demir
    owner_contact_number: "+90 555 987 6543"
    owner_contact_email: ayse@example.com
    form_generation_period: 3
  - name: Karabas
    responsible: vet
    owner_name: Mehmet Kaya
    owner_contact_number: "+90 555 123 4567"
    owner_contact_email: mehmet@example.com
`

func TestApply_Idempotent(t *testing.T) {
	svc := application.New(repository.NewRepositories(testutils.NewSqliteDB(t)))
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	sum, err := Apply(context.Background(), svc, f, logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, Summary{UsersCreated: 2, AnimalsCreated: 2}, sum)

	sum, err = Apply(context.Background(), svc, f, logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, Summary{Skipped: 4}, sum)

	users, err := svc.User.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestApply_UnknownResponsibleUser(t *testing.T) {
	svc := application.New(repository.NewRepositories(testutils.NewSqliteDB(t)))
	f := File{Animals: []Animal{{Name: "Tekir", Responsible: "ghost", OwnerName: "x", OwnerContactEmail: "x@example.com"}}}

	_, err := Apply(context.Background(), svc, f, logger.Discard())
	assert.ErrorContains(t, err, `unknown responsible user "ghost"`)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("pets: []\n"))
	assert.Error(t, err)
}
