package data

import (
	"log/slog"

	"github.com/udisondev/stronghold/internal/model"
)

// EnemyTable — глобальный registry всех enemy templates.
// map[enemyType]*model.EnemyTemplate
var EnemyTable map[model.EnemyType]*model.EnemyTemplate

// LoadEnemyTemplates строит EnemyTable из Go-литералов (enemyDefs).
func LoadEnemyTemplates() error {
	EnemyTable = make(map[model.EnemyType]*model.EnemyTemplate, len(enemyDefs))

	for i := range enemyDefs {
		d := &enemyDefs[i]
		EnemyTable[d.enemyType] = model.NewEnemyTemplate(
			d.enemyType,
			d.name,
			d.maxHealth,
			d.attackPower,
			d.moveSpeed,
			d.reward,
		)
	}

	slog.Info("loaded enemy templates", "count", len(EnemyTable))
	return nil
}

// GetEnemyTemplate возвращает template по архетипу.
// Returns nil если архетип не найден.
func GetEnemyTemplate(enemyType model.EnemyType) *model.EnemyTemplate {
	if EnemyTable == nil {
		return nil
	}
	return EnemyTable[enemyType]
}
