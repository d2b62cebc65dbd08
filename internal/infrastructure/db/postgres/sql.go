package postgres

const insertEventSQL = `
INSERT INTO event (
  id, created_at, owner_id, title, description, banner_id, ends_at, participants_count
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
`

const getEventSQL = `
SELECT id, created_at, owner_id, title, description, banner_id, ends_at, participants_count
FROM event WHERE id = $1
`

const updateEventSQL = `
UPDATE event SET
  title=$2, description=$3, banner_id=$4, ends_at=$5
WHERE id=$1
`

const lockEventSQL = `
SELECT ends_at, participants_count FROM event WHERE id = $1 FOR UPDATE
`

const insertParticipantSQL = `
INSERT INTO event_participant (id, created_at, event_id, user_id)
VALUES ($1,$2,$3,$4)
ON CONFLICT (event_id, user_id) DO NOTHING
`

const deleteParticipantSQL = `
DELETE FROM event_participant WHERE event_id = $1 AND user_id = $2
`

const incrementCountSQL = `
UPDATE event SET participants_count = participants_count + 1 WHERE id = $1
`

const decrementCountSQL = `
UPDATE event SET participants_count = GREATEST(participants_count - 1, 0) WHERE id = $1
`

const isParticipatingSQL = `
SELECT EXISTS(SELECT 1 FROM event_participant WHERE user_id = $1 AND event_id = $2)
`
