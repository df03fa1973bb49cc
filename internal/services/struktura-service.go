package services

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"hr-system/internal/dto"
	"hr-system/internal/entities"
	"hr-system/internal/repositories"
	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/utils"
)

// Podrazumevane vrednosti za zaposlene bez zapisa u šifarniku pozicija.
const (
	defaultPozicijaNivo = 99
	defaultPozicijaBoja = "#95a5a6"
)

type StrukturaServiceInterface interface {
	GetOrgChart(ctx context.Context) ([]*dto.OrgChartNodeDTO, error)
	UpdateHijerarhija(ctx context.Context, payload dto.UpdateHijerarhijaDTO) error
	GetPozicije(ctx context.Context) ([]dto.PozicijaResponseDTO, error)
	CreatePozicija(ctx context.Context, payload dto.CreatePozicijaDTO) (*dto.PozicijaResponseDTO, error)
	GetTim(ctx context.Context, zaposleniID int) ([]dto.TimClanDTO, error)
}

type StrukturaService struct {
	zaposleniRepo repositories.ZaposleniRepositoryInterface
	pozicijaRepo  repositories.PozicijaRepositoryInterface
	logger        *zap.Logger
}

func NewStrukturaService(
	zaposleniRepo repositories.ZaposleniRepositoryInterface,
	pozicijaRepo repositories.PozicijaRepositoryInterface,
	logger *zap.Logger,
) StrukturaServiceInterface {
	return &StrukturaService{
		zaposleniRepo: zaposleniRepo,
		pozicijaRepo:  pozicijaRepo,
		logger:        logger,
	}
}

func orgChartNode(z *entities.Zaposleni) *dto.OrgChartNodeDTO {
	node := &dto.OrgChartNodeDTO{
		ID:           z.ID,
		Ime:          z.Ime,
		Prezime:      z.Prezime,
		Email:        z.Email,
		Pozicija:     z.NazivPozicije(),
		PozicijaNivo: defaultPozicijaNivo,
		PozicijaBoja: defaultPozicijaBoja,
		OdsekNaziv:   z.OdsekNaziv,
		SlikaURL:     z.SlikaURL,
		Podredjeni:   []*dto.OrgChartNodeDTO{},
	}
	if z.PozicijaNivo != nil {
		node.PozicijaNivo = *z.PozicijaNivo
	}
	if z.PozicijaBoja != nil && *z.PozicijaBoja != "" {
		node.PozicijaBoja = *z.PozicijaBoja
	}
	return node
}

// BuildOrgChart gradi šumu iz ravne liste zaposlenih: koreni su zaposleni
// bez nadređenog, deca se rekurzivno vezuju i sortiraju po (nivo, ime).
// Zaposleni čiji nadređeni nije u listi se tiho ispušta iz stabla.
func BuildOrgChart(zaposleni []entities.Zaposleni) []*dto.OrgChartNodeDTO {
	byNadredjeni := make(map[int][]*entities.Zaposleni)
	ids := make(map[int]struct{}, len(zaposleni))
	for i := range zaposleni {
		ids[zaposleni[i].ID] = struct{}{}
	}

	roots := make([]*entities.Zaposleni, 0)
	for i := range zaposleni {
		z := &zaposleni[i]
		if z.NadredjeniID == nil {
			roots = append(roots, z)
			continue
		}
		if _, postoji := ids[*z.NadredjeniID]; !postoji {
			continue
		}
		byNadredjeni[*z.NadredjeniID] = append(byNadredjeni[*z.NadredjeniID], z)
	}

	var attach func(parent *dto.OrgChartNodeDTO)
	attach = func(parent *dto.OrgChartNodeDTO) {
		children := byNadredjeni[parent.ID]
		sortZaposleniZaChart(children)
		for _, child := range children {
			node := orgChartNode(child)
			attach(node)
			parent.Podredjeni = append(parent.Podredjeni, node)
		}
	}

	sortZaposleniZaChart(roots)
	forest := make([]*dto.OrgChartNodeDTO, 0, len(roots))
	for _, root := range roots {
		node := orgChartNode(root)
		attach(node)
		forest = append(forest, node)
	}
	return forest
}

func sortZaposleniZaChart(zaposleni []*entities.Zaposleni) {
	sort.SliceStable(zaposleni, func(i, j int) bool {
		ni, nj := defaultPozicijaNivo, defaultPozicijaNivo
		if zaposleni[i].PozicijaNivo != nil {
			ni = *zaposleni[i].PozicijaNivo
		}
		if zaposleni[j].PozicijaNivo != nil {
			nj = *zaposleni[j].PozicijaNivo
		}
		if ni != nj {
			return ni < nj
		}
		return zaposleni[i].Ime < zaposleni[j].Ime
	})
}

// PraviCiklus proverava da li bi postavljanje nadređenog noviNadredjeniID
// zaposlenom zaposleniID zatvorilo ciklus. Penje se lancem nadređenih od
// predloženog nadređenog; ako naiđe na zaposlenog koga menjamo, to je
// ciklus. Već posećen čvor prekida šetnju: postojeće oštećenje grafa se
// ne pripisuje ovoj izmeni, samo se loguje.
func PraviCiklus(zaposleni []entities.Zaposleni, zaposleniID, noviNadredjeniID int, logger *zap.Logger) bool {
	if zaposleniID == noviNadredjeniID {
		return true
	}

	nadredjeni := make(map[int]*int, len(zaposleni))
	for i := range zaposleni {
		nadredjeni[zaposleni[i].ID] = zaposleni[i].NadredjeniID
	}

	visited := make(map[int]bool)
	current := noviNadredjeniID
	for {
		if current == zaposleniID {
			return true
		}
		if visited[current] {
			if logger != nil {
				logger.Warn("Otkriven postojeći ciklus u lancu nadređenih",
					zap.Int("zaposleniID", current))
			}
			return false
		}
		visited[current] = true

		next, ok := nadredjeni[current]
		if !ok || next == nil {
			return false
		}
		current = *next
	}
}

func (s *StrukturaService) GetOrgChart(ctx context.Context) ([]*dto.OrgChartNodeDTO, error) {
	zaposleni, err := s.zaposleniRepo.GetSviAktivni(ctx)
	if err != nil {
		s.logger.Error("Dohvatanje zaposlenih za organizaciono stablo nije uspelo", zap.Error(err))
		return nil, err
	}
	return BuildOrgChart(zaposleni), nil
}

func (s *StrukturaService) UpdateHijerarhija(ctx context.Context, payload dto.UpdateHijerarhijaDTO) error {
	if _, err := s.zaposleniRepo.FindZaposleni(ctx, payload.ZaposleniID); err != nil {
		return err
	}

	// Nadređeni se uvek postavlja: null u payload-u znači ukidanje nadređenog.
	setNadredjeni := true
	var noviNadredjeni *int
	if payload.NadredjeniID.Valid {
		noviNadredjeni = utils.IntPtr(payload.NadredjeniID.Int)
	}

	if noviNadredjeni != nil {
		if _, err := s.zaposleniRepo.FindZaposleni(ctx, *noviNadredjeni); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewBadRequestError("navedeni nadređeni ne postoji", nil)
			}
			return err
		}

		zaposleni, err := s.zaposleniRepo.GetSviAktivni(ctx)
		if err != nil {
			return err
		}
		if PraviCiklus(zaposleni, payload.ZaposleniID, *noviNadredjeni, s.logger) {
			return apperrors.NewBadRequestError("izmena bi napravila ciklus u hijerarhiji", nil)
		}
	}

	setPozicija := payload.PozicijaID.Valid
	var novaPozicija *int
	if payload.PozicijaID.Valid {
		novaPozicija = utils.IntPtr(payload.PozicijaID.Int)
		if _, err := s.pozicijaRepo.FindPozicija(ctx, payload.PozicijaID.Int); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewBadRequestError("navedena pozicija ne postoji", nil)
			}
			return err
		}
	}

	if err := s.zaposleniRepo.UpdateHijerarhija(ctx, payload.ZaposleniID,
		noviNadredjeni, novaPozicija, setNadredjeni, setPozicija); err != nil {
		s.logger.Error("Izmena hijerarhije nije uspela",
			zap.Int("zaposleniID", payload.ZaposleniID), zap.Error(err))
		return err
	}

	s.logger.Info("Hijerarhija je izmenjena", zap.Int("zaposleniID", payload.ZaposleniID))
	return nil
}

func (s *StrukturaService) GetPozicije(ctx context.Context) ([]dto.PozicijaResponseDTO, error) {
	pozicije, err := s.pozicijaRepo.GetPozicije(ctx)
	if err != nil {
		s.logger.Error("Dohvatanje pozicija nije uspelo", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PozicijaResponseDTO, 0, len(pozicije))
	for i := range pozicije {
		result = append(result, dto.PozicijaResponseDTO{
			ID:       pozicije[i].ID,
			Naziv:    pozicije[i].Naziv,
			Nivo:     pozicije[i].Nivo,
			Boja:     pozicije[i].Boja,
			Opis:     pozicije[i].Opis,
			IsActive: pozicije[i].IsActive,
		})
	}
	return result, nil
}

func (s *StrukturaService) CreatePozicija(ctx context.Context, payload dto.CreatePozicijaDTO) (*dto.PozicijaResponseDTO, error) {
	if _, err := s.pozicijaRepo.FindPozicijaByNaziv(ctx, payload.Naziv); err == nil {
		return nil, apperrors.NewBadRequestError("pozicija sa tim nazivom već postoji", nil)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	boja := payload.Boja
	if boja == "" {
		boja = defaultPozicijaBoja
	}

	pozicija, err := s.pozicijaRepo.CreatePozicija(ctx, entities.Pozicija{
		Naziv: payload.Naziv,
		Nivo:  payload.Nivo,
		Boja:  boja,
		Opis:  payload.Opis,
	})
	if err != nil {
		s.logger.Error("Kreiranje pozicije nije uspelo", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Kreirana nova pozicija", zap.Int("pozicijaID", pozicija.ID), zap.String("naziv", pozicija.Naziv))
	return &dto.PozicijaResponseDTO{
		ID:       pozicija.ID,
		Naziv:    pozicija.Naziv,
		Nivo:     pozicija.Nivo,
		Boja:     pozicija.Boja,
		Opis:     pozicija.Opis,
		IsActive: pozicija.IsActive,
	}, nil
}

func (s *StrukturaService) GetTim(ctx context.Context, zaposleniID int) ([]dto.TimClanDTO, error) {
	if _, err := s.zaposleniRepo.FindZaposleni(ctx, zaposleniID); err != nil {
		return nil, err
	}

	tim, err := s.zaposleniRepo.GetTim(ctx, zaposleniID)
	if err != nil {
		s.logger.Error("Dohvatanje tima nije uspelo", zap.Int("zaposleniID", zaposleniID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.TimClanDTO, 0, len(tim))
	for i := range tim {
		result = append(result, dto.TimClanDTO{
			ID:       tim[i].ID,
			Ime:      tim[i].Ime,
			Prezime:  tim[i].Prezime,
			Email:    tim[i].Email,
			Pozicija: tim[i].NazivPozicije(),
			SlikaURL: tim[i].SlikaURL,
		})
	}
	return result, nil
}
