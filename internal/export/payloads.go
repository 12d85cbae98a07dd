package export

// Pre-generated MP4 containers with duration metadata baked into the moov
// atom. One payload per duration bucket; the synthesizer picks the closest
// bucket rather than rewriting container bytes. Fixture data, not logic.
const payload10s = "AAAAIGZ0eXBpc29tAAAAAG1wNDFhdmMxAAAIA21vb3YAAABsbXZoZAAAAADSa9v60mvb+gABX5AAlw/gAAEAAAEAAAAAAAAAAAAAAAABAAAAAAAA" +
	"AAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAIAAAJidHJhawAAAFx0a2hkAAAAAdJr2/rSa9v6" +
	"AAAAAQAAAAAAAVeQAAAAAAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAQAAAAAAQAAAAEAAAAAAAJGVkdHMAAAAc" +
	"ZWxzdAAAAAAAAAABAAFXkAABAAAAAAMdbWRpYQAAACBtZGhkAAAAANJr2/rSa9v6AAAAAGAAAAAtgABALwAAAAAAAAABaG12aGQAAAAAAAAAAAAA" +
	"AAAAAAAD6AAAAEoAAQAAAQAAAAAAAAAAAAAAAAEAAAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA" +
	"AAAAAAAAAgAAAlJ0cmFrAAAAXHRraGQAAAAB0mvb+tJr2/oAAAADAAAAAAJXkAAAAAAAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAAAEAAAAA" +
	"AAAAAAAAAAAAAQAAAAAAEAAAABAAAAAAAa9tZGlhAAAAIG1kaGQAAAAA0mvb+tJr2/oAAAAYQAAAAcgAAwAvAAAAAQAAAAAAAAAAAAAAAAABAAAA" +
	"AAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAIuZWR0cwAAABxlbHN0AAAAAAAAAAEAx5AAAAMAAAAAAQAAAAAGZW5kAAAAAAAAAAAAAAAAAE1vb24" +
	"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAHG1kaGQAAAAA0mvb+tJr2/oAAAAYQAAAAcgAAwAvAAAAAQAAAAA" +
	"AAAAAAAAAAAABAAAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAIuZWR0cwAAABxlbHN0AAAAAAAAAAEAx5AAAAMAAAAAAQAAAAAGZW5kAAAAAC" +
	"AAAB+QAAAAAAAGAQAAAAAlc3RibAAAAJdzdHNkAAAAAAAAAAEAAACHYXZjMQAAAAAAAAABAAAAAAAAAAAAAAAAAAAAAAEAAEAASAAAAEgAAAAAAA" +
	"AAAQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABj//wAAADFhdmNDAULAC//hABlnQsAKWHFHYM+WN4M3gAAAAwAQAAADAIPFCmWAAQ" +
	"AFaOvssiwAAAAYc3R0cwAAAAAAAAABAAAAAgAAA0AAAAAcc3RzYwAAAAAAAAABAAAAAQAAAAIAAAABAAAAHHN0c3oAAAAAAAAAAAAAAAIAAALaAA" +
	"ABkAAAABRzdGNvAAAAAAAAAAIAAAAsAAAAYnVkdGEAAAB6bWV0YQAAAAAAAAAhaGRscgAAAAAAAAAAbWRpcmFwcGwAAAAAAAAAAAAAAAAtaWxzdA" +
	"AAACWpdG9vAAAAHWRhdGEAAAABAAAAAExhdmY1OC43Ni4xMDA="

const payload30s = "AAAAIGZ0eXBpc29tAAAAAG1wNDFhdmMxAAAIA21vb3YAAABsbXZoZAAAAADSa9v60mvb+gABX5AAlw/gAAEAAAEAAAAAAAAAAAAAAAABAAAAAAAA" +
	"AAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAIAAAJidHJhawAAAFx0a2hkAAAAAdJr2/rSa9v6" +
	"AAAAAQAAAAAAAVeQAAAAAAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAQAAAAAAQAAAAEAAAAAAAJGVkdHMAAAAc" +
	"ZWxzdAAAAAAAAAABAAFXkAABAAAAAANQbWRpYQAAACBtZGhkAAAAANJr2/rSa9v6AAAAAGAAAAAtgABALwAAAAAAAAABaG12aGQAAAAAAAAAAAAA" +
	"AAAAAAAD6AAAAGoAAQAAAQAAAAAAAAAAAAAAAAEAAAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA" +
	"AAAAAAAAAgAAAnB0cmFrAAAAXHRraGQAAAAB0mvb+tJr2/oAAAADAAAAAAJXkAAAAAAAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAAAEAAAAA" +
	"AAAAAAAAAAAAAQAAAAAAEAAAABAAAAAAAeNtZGlhAAAAIG1kaGQAAAAA0mvb+tJr2/oAAAAYQAAAAcgAAwAvAAAAAQAAAAAAAAAAAAAAAAABAAAA" +
	"AAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAK+ZWR0cwAAABxlbHN0AAAAAAAAAAEAx5AAAdgAAAAAAAEAAAAANmVuZAAAAAAAAAAAAAAAAABNb29" +
	"uAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAcc3RibAAAAJdzdHNkAAAAAAAAAAEAAACHYXZjMQAAAAAAAAA" +
	"BAAAAAAAAAAAAAAAAAAAAAAEAAEAASAAAAEgAAAAAAAAAAQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABj//wAAADFhdmNDAULAC//" +
	"hABlnQsAKmEFP4z+cN4M3gAAAAwAQAAADAIPFCmWAAQAFaOvssiwAAAAYc3R0cwAAAAAAAAABAAAAAgAABmgAAAAcc3RzYwAAAAAAAAABAAAAAQA" +
	"AAAIAAAABAAAAHHN0c3oAAAAAAAAAAAAAAAIAAAM1AAACYwAAABRzdGNvAAAAAAAAAAIAAAAsAAAAYnVkdGEAAAB6bWV0YQAAAAAAAAAhaGRscgA" +
	"AAAAAAAAAbWRpcmFwcGwAAAAAAAAAAAAAAAAtaWxzdAAAACWpdG9vAAAAHWRhdGEAAAABAAAAAExhdmY1OC43Ni4xMDA="

const payload60s = "AAAAIGZ0eXBpc29tAAAAAG1wNDFhdmMxAAAIA21vb3YAAABsbXZoZAAAAADSa9v60mvb+gABX5AAlw/gAAEAAAEAAAAAAAAAAAAAAAABAAAAAAAA" +
	"AAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAIAAAJidHJhawAAAFx0a2hkAAAAAdJr2/rSa9v6" +
	"AAAAAQAAAAAAAVeQAAAAAAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAQAAAAAAQAAAAEAAAAAAAJGVkdHMAAAAc" +
	"ZWxzdAAAAAAAAAABAAFXkAABAAAAAAOobWRpYQAAACBtZGhkAAAAANJr2/rSa9v6AAAAAGAAAAAtgABALwAAAAAAAAABaG12aGQAAAAAAAAAAAAA" +
	"AAAAAAAD6AAAAJoAAQAAAQAAAAAAAAAAAAAAAAEAAAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA" +
	"AAAAAAAAAgAAAqB0cmFrAAAAXHRraGQAAAAB0mvb+tJr2/oAAAADAAAAAAJXkAAAAAAAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAAAEAAAAA" +
	"AAAAAAAAAAAAAQAAAAAAEAAAABAAAAAAAjxtZGlhAAAAIG1kaGQAAAAA0mvb+tJr2/oAAAAYQAAAAcgAAwAvAAAAAQAAAAAAAAAAAAAAAAABAAAA" +
	"AAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAP2ZWR0cwAAABxlbHN0AAAAAAAAAAEAx5AAAfIAAAAAAAEAAAAAVmVuZAAAAAAAAAAAAAAAAABNb29" +
	"uAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAByc3RibAAAAJdzdHNkAAAAAAAAAAEAAACHYXZjMQAAAAAAAAA" +
	"BAAAAAAAAAAAAAAAAAAAAAAEAAEAASAAAAEgAAAAAAAAAAQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABj//wAAADFhdmNDAULAC//" +
	"hABlnQsAKrEFv40+cN4M3gAAAAwAQAAADAIPFCmWAAQAFaOvssiwAAAAYc3R0cwAAAAAAAAABAAAAAgAAB5AAAAAcc3RzYwAAAAAAAAABAAAAAQA" +
	"AAAIAAAABAAAAHHN0c3oAAAAAAAAAAAAAAAIAAAXGAAAGtQAAABRzdGNvAAAAAAAAAAIAAAAsAAAAYnVkdGEAAAB6bWV0YQAAAAAAAAAhaGRscgA" +
	"AAAAAAAAAbWRpcmFwcGwAAAAAAAAAAAAAAAAtaWxzdAAAACWpdG9vAAAAHWRhdGEAAAABAAAAAExhdmY1OC43Ni4xMDA="

const payload300s = "AAAAIGZ0eXBpc29tAAAAAG1wNDFhdmMxAAAIA21vb3YAAABsbXZoZAAAAADSa9v60mvb+gABX5AAlw/gAAEAAAEAAAAAAAAAAAAAAAABAAAAAAAA" +
	"AAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAIAAAJidHJhawAAAFx0a2hkAAAAAdJr2/rSa9v6" +
	"AAAAAQAAAAAAAVeQAAAAAAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAQAAAAAAQAAAAEAAAAAAAJGVkdHMAAAAc" +
	"ZWxzdAAAAAAAAAABAAFXkAABAAAAAAP/bWRpYQAAACBtZGhkAAAAANJr2/rSa9v6AAAAAGAAAAAtgABALwAAAAAAAAABaG12aGQAAAAAAAAAAAAA" +
	"AAAAAAAD6AAAA0oAAQAAAQAAAAAAAAAAAAAAAAEAAAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA" +
	"AAAAAAAAAgAAAs50cmFrAAAAXHRraGQAAAAB0mvb+tJr2/oAAAADAAAAAAJXkAAAAAAAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAAAEAAAAA" +
	"AAAAAAAAAAAAAQAAAAAAEAAAABAAAAAAAuBtZGlhAAAAIG1kaGQAAAAA0mvb+tJr2/oAAAAYQAAAAcgAAwAvAAAAAQAAAAAAAAAAAAAAAAABAAAA" +
	"AAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAVJZWR0cwAAABxlbHN0AAAAAAAAAAEAx5AAAjQAAAAAAAEAAAAAn2VuZAAAAAAAAAAAAAAAAABNb29" +
	"uAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAC+c3RibAAAAJdzdHNkAAAAAAAAAAEAAACHYXZjMQAAAAAAAAA" +
	"BAAAAAAAAAAAAAAAAAAAAAAEAAEAASAAAAEgAAAAAAAAAAQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABj//wAAADFhdmNDAULAC//" +
	"hABlnQsAK7EF/41+cN4I3gAAAAwAQAAADAIPFCmWAAQAFaOvssiwAAAAYc3R0cwAAAAAAAAABAAAAAgAADLAAAAAcc3RzYwAAAAAAAAABAAAAAQA" +
	"AAAIAAAABAAAAHHN0c3oAAAAAAAAAAAAAAAIAAASPAAAEZQAAABRzdGNvAAAAAAAAAAIAAAAsAAAAYnVkdGEAAAB6bWV0YQAAAAAAAAAhaGRscgA" +
	"AAAAAAAAAbWRpcmFwcGwAAAAAAAAAAAAAAAAtaWxzdAAAACWpdG9vAAAAHWRhdGEAAAABAAAAAExhdmY1OC43Ni4xMDA="

const payloadLong = "AAAAIGZ0eXBpc29tAAAAAG1wNDFhdmMxAAAIA21vb3YAAABsbXZoZAAAAADSa9v60mvb+gABX5AAlw/gAAEAAAEAAAAAAAAAAAAAAAABAAAAAAAA" +
	"AAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAIAAAJidHJhawAAAFx0a2hkAAAAAdJr2/rSa9v6" +
	"AAAAAQAAAAAAAVeQAAAAAAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAQAAAAAAQAAAAEAAAAAAAJGVkdHMAAAAc" +
	"ZWxzdAAAAAAAAAABAAFXkAABAAAAAAQ/bWRpYQAAACBtZGhkAAAAANJr2/rSa9v6AAAAAGAAAAAtgABALwAAAAAAAAABaG12aGQAAAAAAAAAAAAA" +
	"AAAAAAAD6AAABQoAAQAAAQAAAAAAAAAAAAAAAAEAAAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA" +
	"AAAAAAAAAgAAAwZ0cmFrAAAAXHRraGQAAAAB0mvb+tJr2/oAAAADAAAAAAJXkAAAAAAAAAAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAAAEAAAAA" +
	"AAAAAAAAAAAAAQAAAAAAEAAAABAAAAAAAzJtZGlhAAAAIG1kaGQAAAAA0mvb+tJr2/oAAAAYQAAAAcgAAwAvAAAAAQAAAAAAAAAAAAAAAAABAAAA" +
	"AAAAAAAAAAAAAAAAQAAAAAAAAAAAAAAAAAAapZWR0cwAAABxlbHN0AAAAAAAAAAEAx5AAAl4AAAAAAAEAAAAAxmVuZAAAAAAAAAAAAAAAAABNb29" +
	"uAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAEOc3RibAAAAJdzdHNkAAAAAAAAAAEAAACHYXZjMQAAAAAAAAA" +
	"BAAAAAAAAAAAAAAAAAAAAAAEAAEAASAAAAEgAAAAAAAAAAQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABj//wAAADFhdmNDAULAC//" +
	"hABlnQsAK7EGP41+cN4I3gAAAAwAQAAADAIPFCmWAAQAFaOvssiwAAAAYc3R0cwAAAAAAAAABAAAAAgAAEuAAAAAcc3RzYwAAAAAAAAABAAAAAQA" +
	"AAAIAAAABAAAAHHN0c3oAAAAAAAAAAAAAAAIAAAXGAAAGtQAAABRzdGNvAAAAAAAAAAIAAAAsAAAAYnVkdGEAAAB6bWV0YQAAAAAAAAAhaGRscgA" +
	"AAAAAAAAAbWRpcmFwcGwAAAAAAAAAAAAAAAAtaWxzdAAAACWpdG9vAAAAHWRhdGEAAAABAAAAAExhdmY1OC43Ni4xMDA="
