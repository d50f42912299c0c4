package repository

import (
	"context"

	"github.com/Juan-204/evc-backend/internal/dto"
	"github.com/Juan-204/evc-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GuiaRepository interface {
	// Transactional writes — tx is the service-layer transaction handle.
	UpsertVehiculoConductor(ctx context.Context, tx *gorm.DB, idVehiculo, idConductores uint) (uint, error)
	CreateGuia(ctx context.Context, tx *gorm.DB, g *model.GuiaTransporte) error
	CreateDetalle(ctx context.Context, tx *gorm.DB, d *model.GuiaTransporteDetalle) error
	CreateDecomiso(ctx context.Context, tx *gorm.DB, d *model.Decomiso) error

	// Read-back closure for the document assembler.
	FindGuiaPDF(ctx context.Context, id uint) (*dto.GuiaPDFHeader, error)
	FindDetallesPDF(ctx context.Context, id uint) ([]dto.DetallePDF, error)
	FindDecomisosPDF(ctx context.Context, id uint, fecha string) ([]dto.DecomisoPDF, error)
	FindDestinoPDF(ctx context.Context, idDestino uint) (*dto.DestinoPDF, error)

	// Browse queries for the search forms.
	ListPorEstablecimiento(ctx context.Context, idEstablecimiento uint) ([]model.GuiaTransporte, error)
	AnimalesPorGuia(ctx context.Context, idGuia uint) ([]dto.AnimalGuiaResponse, error)

	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type guiaRepo struct{ db *gorm.DB }

func NewGuiaRepository(db *gorm.DB) GuiaRepository { return &guiaRepo{db: db} }

func (r *guiaRepo) DB() *gorm.DB { return r.db }

// UpsertVehiculoConductor finds or creates the (vehiculo, conductor) pairing
// and bumps updated_at on conflict, returning the pairing id.
func (r *guiaRepo) UpsertVehiculoConductor(ctx context.Context, tx *gorm.DB, idVehiculo, idConductores uint) (uint, error) {
	vc := model.VehiculoConductor{IDVehiculo: idVehiculo, IDConductores: idConductores}
	err := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id_vehiculo"}, {Name: "id_conductores"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"updated_at": gorm.Expr("NOW()")}),
		}).
		Create(&vc).Error
	if err != nil {
		return 0, err
	}
	if vc.ID != 0 {
		return vc.ID, nil
	}
	// Some conflict paths do not report the id back; fetch it explicitly.
	var existing model.VehiculoConductor
	err = tx.WithContext(ctx).
		Where("id_vehiculo = ? AND id_conductores = ?", idVehiculo, idConductores).
		First(&existing).Error
	return existing.ID, err
}

func (r *guiaRepo) CreateGuia(ctx context.Context, tx *gorm.DB, g *model.GuiaTransporte) error {
	return tx.WithContext(ctx).Create(g).Error
}

func (r *guiaRepo) CreateDetalle(ctx context.Context, tx *gorm.DB, d *model.GuiaTransporteDetalle) error {
	return tx.WithContext(ctx).Create(d).Error
}

func (r *guiaRepo) CreateDecomiso(ctx context.Context, tx *gorm.DB, d *model.Decomiso) error {
	return tx.WithContext(ctx).Create(d).Error
}

func (r *guiaRepo) FindGuiaPDF(ctx context.Context, id uint) (*dto.GuiaPDFHeader, error) {
	var h dto.GuiaPDFHeader
	err := r.db.WithContext(ctx).Raw(`
		SELECT TO_CHAR(g.fecha, 'YYYY-MM-DD') AS fecha,
		       p.nombre AS nombre_planta, p.telefono AS telefono_planta, p.direccion AS direccion_planta,
		       v.tipo_vehiculo, v.tipo_refrigeracion, v.placa,
		       c.nombre AS nombre_conductor, c.numero_cedula
		FROM guia_transporte g
		JOIN planta p ON g.id_planta = p.id
		JOIN vehiculo_conductor vc ON g.id_vehiculo_conductor = vc.id
		JOIN vehiculo v ON vc.id_vehiculo = v.id
		JOIN conductores c ON vc.id_conductores = c.id
		WHERE g.id = ?`, id).Scan(&h).Error
	if err != nil {
		return nil, err
	}
	if h.Fecha == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &h, nil
}

func (r *guiaRepo) FindDetallesPDF(ctx context.Context, id uint) ([]dto.DetallePDF, error) {
	var rows []dto.DetallePDF
	err := r.db.WithContext(ctx).Raw(`
		SELECT d.carne_octavos, d.viseras_blancas, d.viseras_rojas, d.cabezas,
		       d.temperatura_promedio, d.dictamen,
		       a.numero_animal, a.especie, a.guia_movilizacion
		FROM guia_transporte_detalle d
		JOIN ingresos_detalles i ON d.id_ingreso_detalle = i.id
		JOIN animales a ON i.id_animales = a.id
		WHERE d.id_guia_transporte = ?`, id).Scan(&rows).Error
	return rows, err
}

func (r *guiaRepo) FindDecomisosPDF(ctx context.Context, id uint, fecha string) ([]dto.DecomisoPDF, error) {
	var rows []dto.DecomisoPDF
	err := r.db.WithContext(ctx).Raw(`
		SELECT de.producto, de.cantidad, de.motivo, a.numero_animal
		FROM decomisos de
		JOIN animales a ON de.id_animal = a.id
		JOIN ingresos_detalles i ON a.id = i.id_animales
		JOIN guia_transporte_detalle gd ON gd.id_ingreso_detalle = i.id
		JOIN guia_transporte g ON gd.id_guia_transporte = g.id
		WHERE gd.id_guia_transporte = ? AND g.fecha = ?`, id, fecha).Scan(&rows).Error
	return rows, err
}

func (r *guiaRepo) FindDestinoPDF(ctx context.Context, idDestino uint) (*dto.DestinoPDF, error) {
	var d dto.DestinoPDF
	err := r.db.WithContext(ctx).Raw(`
		SELECT es.nombre_dueno, es.nombre_establecimiento, es.direccion,
		       es.marca_diferencial, m.nombre_municipios, d.nombre_departamento
		FROM establecimiento es
		JOIN municipio m ON es.id_municipio = m.id
		JOIN departamento d ON m.id_departamento = d.id
		WHERE es.id = ?`, idDestino).Scan(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListPorEstablecimiento returns the guias whose lines reference animals of
// the given establecimiento, most recent first.
func (r *guiaRepo) ListPorEstablecimiento(ctx context.Context, idEstablecimiento uint) ([]model.GuiaTransporte, error) {
	var guias []model.GuiaTransporte
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT gt.id, gt.fecha, gt.id_planta, gt.id_vehiculo_conductor
		FROM guia_transporte gt
		JOIN guia_transporte_detalle gtd ON gt.id = gtd.id_guia_transporte
		JOIN ingresos_detalles idet ON gtd.id_ingreso_detalle = idet.id
		JOIN animales a ON idet.id_animales = a.id
		WHERE a.id_establecimiento = ?
		ORDER BY gt.fecha DESC`, idEstablecimiento).Scan(&guias).Error
	return guias, err
}

func (r *guiaRepo) AnimalesPorGuia(ctx context.Context, idGuia uint) ([]dto.AnimalGuiaResponse, error) {
	var rows []dto.AnimalGuiaResponse
	err := r.db.WithContext(ctx).Raw(`
		SELECT a.id, a.numero_animal, a.numero_tiquete, a.guia_movilizacion,
		       a.especie, a.peso, TO_CHAR(a.fecha_ingreso, 'YYYY-MM-DD') AS fecha_ingreso,
		       e.nombre_establecimiento
		FROM guia_transporte_detalle gtd
		JOIN ingresos_detalles idet ON gtd.id_ingreso_detalle = idet.id
		JOIN animales a ON idet.id_animales = a.id
		JOIN establecimiento e ON a.id_establecimiento = e.id
		WHERE gtd.id_guia_transporte = ?`, idGuia).Scan(&rows).Error
	return rows, err
}
