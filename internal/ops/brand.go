package ops

import (
	"context"
	"fmt"

	"github.com/herdware/herdctl/internal/dns"
	"github.com/herdware/herdctl/internal/session"
	"github.com/herdware/herdctl/internal/ui"
)

// recordTTL is applied to every record brand manages.
const recordTTL = 300

// Brand registers the bound node in DNS: an A record for the server's name
// and a CNAME for each alias, all within the configured domain.
func Brand(ctx context.Context, sess *session.Session, aliases []string) error {
	target, err := sess.Target()
	if err != nil {
		return fmt.Errorf("must select a server to add to DNS first: %w", err)
	}

	zone, err := sess.DNS.GetZone(ctx, sess.Settings.Domain)
	if err != nil {
		return err
	}
	listed, err := sess.DNS.ListRecords(ctx, zone.ID)
	if err != nil {
		return err
	}
	records := make(map[string]*dns.Record, len(listed))
	for _, r := range listed {
		records[r.Name] = r
	}

	name := target.Server.Name
	if err := ensureRecord(ctx, sess, zone, records, "A", name, target.Addr); err != nil {
		return err
	}

	canonical := fmt.Sprintf("%s.%s.", name, sess.Settings.Domain)
	for _, alias := range aliases {
		if err := ensureRecord(ctx, sess, zone, records, "CNAME", alias, canonical); err != nil {
			return err
		}
	}
	return nil
}

// ensureRecord reconciles one record to the wanted type and value:
// absent -> create, same type -> update in place, different type ->
// delete then create. Bounded at one delete, no recursion.
func ensureRecord(ctx context.Context, sess *session.Session, zone *dns.Zone, records map[string]*dns.Record, recordType, name, value string) error {
	wanted := dns.Record{
		ZoneID: zone.ID,
		Type:   recordType,
		Name:   name,
		Value:  value,
		TTL:    recordTTL,
	}

	existing, ok := records[name]
	switch {
	case !ok:
		created, err := sess.DNS.CreateRecord(ctx, wanted)
		if err != nil {
			return fmt.Errorf("failed to create %s record %s: %w", recordType, name, err)
		}
		records[name] = created
		ui.OK("Created record for %s", name)

	case existing.Type == recordType:
		wanted.ID = existing.ID
		updated, err := sess.DNS.UpdateRecord(ctx, wanted)
		if err != nil {
			return fmt.Errorf("failed to update %s record %s: %w", recordType, name, err)
		}
		records[name] = updated
		ui.OK("Updated record for %s", name)

	default:
		ui.OK("Replacing record %s...", name)
		if err := sess.DNS.DeleteRecord(ctx, existing.ID); err != nil {
			return fmt.Errorf("failed to delete stale record %s: %w", name, err)
		}
		created, err := sess.DNS.CreateRecord(ctx, wanted)
		if err != nil {
			return fmt.Errorf("failed to recreate %s record %s: %w", recordType, name, err)
		}
		records[name] = created
	}
	return nil
}
