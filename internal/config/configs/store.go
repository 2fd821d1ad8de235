package configs

// Storage driver names accepted by Store.Driver.
const (
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
)

// Store selects which storage backend holds the dashboard data. The memory
// driver is the default and loses all state on restart; bolt persists to a
// local file; postgres uses the connection configured in the PSQL_ section.
type Store struct {
	// Driver is one of memory, bolt or postgres.
	Driver string `env:"DRIVER" envDefault:"memory"`

	// BoltPath is the bbolt database file used by the bolt driver.
	BoltPath string `env:"BOLT_PATH" envDefault:"admybrand.db"`
}
