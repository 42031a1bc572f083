package platform

import (
	"os"

	"golang.org/x/term"

	"github.com/rmsplatform/rms/internal/client/storage"
)

// Desktop is the production Capabilities implementation. Interactivity is
// probed once at construction (stdin attached to a terminal); standalone
// mode comes from configuration, since an installed app knows it is
// installed and an embedded one does not.
type Desktop struct {
	interactive bool
	standalone  bool
	persistent  storage.Store
	session     storage.Store
}

func NewDesktop(standalone bool, persistent storage.Store) *Desktop {
	return &Desktop{
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
		standalone:  standalone,
		persistent:  persistent,
		session:     storage.NewMemoryStore(),
	}
}

func (d *Desktop) IsInteractiveHost() bool { return d.interactive }

func (d *Desktop) IsStandaloneHost() bool { return d.standalone }

func (d *Desktop) PersistentStore() storage.Store { return d.persistent }

func (d *Desktop) SessionStore() storage.Store { return d.session }
