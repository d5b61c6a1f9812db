package api

import "time"

type AttachDomainRequest struct {
	Domain string `json:"domain"`
}

type AttachDomainResponse struct {
	Success bool   `json:"success"`
	Domain  string `json:"domain"`
	Status  string `json:"status"`
}

type VerifyDomainRequest struct {
	Domain string `json:"domain"`
}

type VerifyDomainResponse struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}

type DomainQueueEntryResponse struct {
	UUID      string    `json:"uuid" readonly:"true"`
	Domain    string    `json:"domain"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type DomainQueueCollectionResponse struct {
	Data  []DomainQueueEntryResponse `json:"data"`
	Meta  ResponseMetadata           `json:"meta"`
	Links Links                      `json:"links"`
}

func (d *DomainQueueCollectionResponse) SetMetadata(meta ResponseMetadata, links Links) {
	d.Meta = meta
	d.Links = links
}
