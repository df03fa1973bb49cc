package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hr-system/internal/entities"
)

func zaposleniZaChart(id int, ime string, nadredjeniID *int, nivo *int) entities.Zaposleni {
	return entities.Zaposleni{
		ID:           id,
		Ime:          ime,
		Prezime:      ime + "ić",
		Email:        ime + "@firma.local",
		NadredjeniID: nadredjeniID,
		PozicijaNivo: nivo,
	}
}

func intPtr(v int) *int { return &v }

func TestBuildOrgChart_KorenIDeca(t *testing.T) {
	zaposleni := []entities.Zaposleni{
		zaposleniZaChart(1, "Ana", nil, intPtr(1)),
		zaposleniZaChart(2, "Boris", intPtr(1), intPtr(3)),
		zaposleniZaChart(3, "Vera", intPtr(1), intPtr(2)),
		zaposleniZaChart(4, "Goran", intPtr(2), intPtr(5)),
	}

	forest := BuildOrgChart(zaposleni)

	require.Len(t, forest, 1)
	root := forest[0]
	assert.Equal(t, 1, root.ID)

	// Deca korena sortirana po nivou pozicije.
	require.Len(t, root.Podredjeni, 2)
	assert.Equal(t, 3, root.Podredjeni[0].ID)
	assert.Equal(t, 2, root.Podredjeni[1].ID)

	require.Len(t, root.Podredjeni[1].Podredjeni, 1)
	assert.Equal(t, 4, root.Podredjeni[1].Podredjeni[0].ID)
	assert.Empty(t, root.Podredjeni[1].Podredjeni[0].Podredjeni)
}

func TestBuildOrgChart_SortPoNivouPaImenu(t *testing.T) {
	zaposleni := []entities.Zaposleni{
		zaposleniZaChart(1, "Šef", nil, intPtr(1)),
		zaposleniZaChart(2, "Marko", intPtr(1), intPtr(4)),
		zaposleniZaChart(3, "Ana", intPtr(1), intPtr(4)),
		zaposleniZaChart(4, "Zoran", intPtr(1), nil), // bez pozicije -> nivo 99, poslednji
	}

	forest := BuildOrgChart(zaposleni)

	require.Len(t, forest, 1)
	deca := forest[0].Podredjeni
	require.Len(t, deca, 3)
	assert.Equal(t, "Ana", deca[0].Ime)
	assert.Equal(t, "Marko", deca[1].Ime)
	assert.Equal(t, "Zoran", deca[2].Ime)
	assert.Equal(t, defaultPozicijaNivo, deca[2].PozicijaNivo)
	assert.Equal(t, defaultPozicijaBoja, deca[2].PozicijaBoja)
}

func TestBuildOrgChart_NepostojeciNadredjeniSeIspusta(t *testing.T) {
	zaposleni := []entities.Zaposleni{
		zaposleniZaChart(1, "Ana", nil, intPtr(1)),
		zaposleniZaChart(2, "Boris", intPtr(77), intPtr(3)), // nadređeni nije u listi
	}

	forest := BuildOrgChart(zaposleni)

	require.Len(t, forest, 1)
	assert.Equal(t, 1, forest[0].ID)
	assert.Empty(t, forest[0].Podredjeni)
}

func TestBuildOrgChart_ViseKorena(t *testing.T) {
	zaposleni := []entities.Zaposleni{
		zaposleniZaChart(1, "Boris", nil, intPtr(2)),
		zaposleniZaChart(2, "Ana", nil, intPtr(1)),
	}

	forest := BuildOrgChart(zaposleni)

	require.Len(t, forest, 2)
	assert.Equal(t, "Ana", forest[0].Ime)
	assert.Equal(t, "Boris", forest[1].Ime)
}

func TestPraviCiklus_SamSebi(t *testing.T) {
	assert.True(t, PraviCiklus(nil, 5, 5, zap.NewNop()))
}

func TestPraviCiklus_DirektanCiklus(t *testing.T) {
	// B je podređen A; postaviti A pod B pravi ciklus A <-> B.
	zaposleni := []entities.Zaposleni{
		zaposleniZaChart(1, "A", nil, nil),
		zaposleniZaChart(2, "B", intPtr(1), nil),
	}
	assert.True(t, PraviCiklus(zaposleni, 1, 2, zap.NewNop()))
}

func TestPraviCiklus_DubokLanac(t *testing.T) {
	// 1 -> 2 -> 3; postaviti 1 pod 3 zatvara ciklus preko celog lanca.
	zaposleni := []entities.Zaposleni{
		zaposleniZaChart(1, "A", nil, nil),
		zaposleniZaChart(2, "B", intPtr(1), nil),
		zaposleniZaChart(3, "C", intPtr(2), nil),
	}
	assert.True(t, PraviCiklus(zaposleni, 1, 3, zap.NewNop()))
}

func TestPraviCiklus_DozvoljenaIzmena(t *testing.T) {
	zaposleni := []entities.Zaposleni{
		zaposleniZaChart(1, "A", nil, nil),
		zaposleniZaChart(2, "B", intPtr(1), nil),
		zaposleniZaChart(3, "C", intPtr(1), nil),
	}
	// Premestiti C pod B ne pravi ciklus.
	assert.False(t, PraviCiklus(zaposleni, 3, 2, zap.NewNop()))
}

func TestPraviCiklus_PostojeceOstecenjeNeBlokira(t *testing.T) {
	// 2 i 3 već čine ciklus koji ne uključuje zaposlenog 1; izmena prolazi.
	zaposleni := []entities.Zaposleni{
		zaposleniZaChart(1, "A", nil, nil),
		zaposleniZaChart(2, "B", intPtr(3), nil),
		zaposleniZaChart(3, "C", intPtr(2), nil),
	}
	assert.False(t, PraviCiklus(zaposleni, 1, 2, zap.NewNop()))
}
