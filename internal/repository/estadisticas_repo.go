package repository

import (
	"context"

	"github.com/Juan-204/evc-backend/internal/dto"

	"gorm.io/gorm"
)

// EstadisticasRepository backs the aggregate charts: global species counts
// plus the per-establecimiento breakdowns.
type EstadisticasRepository interface {
	AnimalesPorEspecie(ctx context.Context) ([]dto.EspecieCantidad, error)
	DecomisosPorEspecie(ctx context.Context) ([]dto.EspecieDecomisos, error)
	AnimalesPorEspecieEstablecimiento(ctx context.Context, idEstablecimiento uint) ([]dto.EspecieCantidad, error)
	DistribucionSexo(ctx context.Context, idEstablecimiento uint) ([]dto.EspecieSexo, error)
	PesoPromedio(ctx context.Context, idEstablecimiento uint) ([]dto.EspeciePesoPromedio, error)
	EvolucionIngresos(ctx context.Context, idEstablecimiento uint) ([]dto.FechaCantidad, error)
}

type estadisticasRepo struct{ db *gorm.DB }

func NewEstadisticasRepository(db *gorm.DB) EstadisticasRepository { return &estadisticasRepo{db: db} }

func (r *estadisticasRepo) AnimalesPorEspecie(ctx context.Context) ([]dto.EspecieCantidad, error) {
	var rows []dto.EspecieCantidad
	err := r.db.WithContext(ctx).Raw(`
		SELECT especie, COUNT(id) AS cantidad
		FROM animales
		GROUP BY especie
		ORDER BY cantidad DESC`).Scan(&rows).Error
	return rows, err
}

func (r *estadisticasRepo) DecomisosPorEspecie(ctx context.Context) ([]dto.EspecieDecomisos, error) {
	var rows []dto.EspecieDecomisos
	err := r.db.WithContext(ctx).Raw(`
		SELECT a.especie, COUNT(d.id) AS cantidad_decomisos
		FROM decomisos d
		JOIN animales a ON d.id_animal = a.id
		GROUP BY a.especie
		ORDER BY cantidad_decomisos DESC`).Scan(&rows).Error
	return rows, err
}

func (r *estadisticasRepo) AnimalesPorEspecieEstablecimiento(ctx context.Context, idEstablecimiento uint) ([]dto.EspecieCantidad, error) {
	var rows []dto.EspecieCantidad
	err := r.db.WithContext(ctx).Raw(`
		SELECT especie, COUNT(id) AS cantidad
		FROM animales
		WHERE id_establecimiento = ?
		GROUP BY especie
		ORDER BY cantidad DESC`, idEstablecimiento).Scan(&rows).Error
	return rows, err
}

func (r *estadisticasRepo) DistribucionSexo(ctx context.Context, idEstablecimiento uint) ([]dto.EspecieSexo, error) {
	var rows []dto.EspecieSexo
	err := r.db.WithContext(ctx).Raw(`
		SELECT especie,
		       SUM(CASE WHEN sexo = 'Macho' THEN 1 ELSE 0 END) AS macho,
		       SUM(CASE WHEN sexo = 'Hembra' THEN 1 ELSE 0 END) AS hembra
		FROM animales
		WHERE id_establecimiento = ?
		GROUP BY especie
		ORDER BY especie`, idEstablecimiento).Scan(&rows).Error
	return rows, err
}

func (r *estadisticasRepo) PesoPromedio(ctx context.Context, idEstablecimiento uint) ([]dto.EspeciePesoPromedio, error) {
	var rows []dto.EspeciePesoPromedio
	err := r.db.WithContext(ctx).Raw(`
		SELECT especie, AVG(peso) AS peso_promedio
		FROM animales
		WHERE id_establecimiento = ?
		GROUP BY especie
		ORDER BY peso_promedio DESC`, idEstablecimiento).Scan(&rows).Error
	return rows, err
}

func (r *estadisticasRepo) EvolucionIngresos(ctx context.Context, idEstablecimiento uint) ([]dto.FechaCantidad, error) {
	var rows []dto.FechaCantidad
	err := r.db.WithContext(ctx).Raw(`
		SELECT TO_CHAR(DATE(fecha_ingreso), 'YYYY-MM-DD') AS fecha, COUNT(id) AS cantidad
		FROM animales
		WHERE id_establecimiento = ?
		GROUP BY DATE(fecha_ingreso)
		ORDER BY fecha ASC`, idEstablecimiento).Scan(&rows).Error
	return rows, err
}
