package data

import (
	"log/slog"

	"github.com/udisondev/stronghold/internal/game/tower"
)

// TowerTable — глобальный registry всех tower templates.
// map[towerType]*tower.Template
var TowerTable map[tower.Type]*tower.Template

// LoadTowerTemplates строит TowerTable из Go-литералов (towerDefs).
func LoadTowerTemplates() error {
	TowerTable = make(map[tower.Type]*tower.Template, len(towerDefs))

	for i := range towerDefs {
		d := &towerDefs[i]
		TowerTable[d.towerType] = tower.NewTemplate(
			d.towerType,
			d.name,
			d.attackRange,
			d.damage,
			d.cooldown,
			d.splashRadius,
			d.cost,
		)
	}

	slog.Info("loaded tower templates", "count", len(TowerTable))
	return nil
}

// GetTowerTemplate возвращает template по архетипу.
// Returns nil если архетип не найден.
func GetTowerTemplate(towerType tower.Type) *tower.Template {
	if TowerTable == nil {
		return nil
	}
	return TowerTable[towerType]
}
