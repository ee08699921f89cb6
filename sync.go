package main

// SyncMirror rebuilds the in-memory item mirror from the catalog. Commands
// that read or mutate the mirror call this first so the session state
// reflects the catalog.
func (ctx *Context) SyncMirror() error {
	items, err := ctx.Catalog.ListAll()

	if err != nil {
		return err
	}

	ctx.Items.Replace(items)
	return nil
}
