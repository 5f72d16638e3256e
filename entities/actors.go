package entities

import "github.com/andreyvit/ifc"

type Person struct {
	Identification ifc.Optional[string]
	FamilyName     ifc.Optional[string]
	GivenName      ifc.Optional[string]
	MiddleNames    ifc.Optional[[]string]
	PrefixTitles   ifc.Optional[[]string]
	SuffixTitles   ifc.Optional[[]string]
	Roles          ifc.Optional[[]ifc.Ref[*ActorRole]]
	Addresses      ifc.Optional[[]ifc.Ref[AnyAddress]]
}

func (*Person) Keyword() string { return "IFCPERSON" }

func (v *Person) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.Identification, parseOptString),
		ifc.Field(&v.FamilyName, parseOptString),
		ifc.Field(&v.GivenName, parseOptString),
		ifc.Field(&v.MiddleNames, parseOptStrings),
		ifc.Field(&v.PrefixTitles, parseOptStrings),
		ifc.Field(&v.SuffixTitles, parseOptStrings),
		ifc.Field(&v.Roles, parseOptRefs[*ActorRole]),
		ifc.Field(&v.Addresses, parseOptRefs[AnyAddress]),
	)
}

func (v *Person) AppendAttrs(buf []byte) []byte {
	buf = comma(appendOptString(buf, v.Identification))
	buf = comma(appendOptString(buf, v.FamilyName))
	buf = comma(appendOptString(buf, v.GivenName))
	buf = comma(appendOptStrings(buf, v.MiddleNames))
	buf = comma(appendOptStrings(buf, v.PrefixTitles))
	buf = comma(appendOptStrings(buf, v.SuffixTitles))
	buf = comma(appendOptRefs(buf, v.Roles))
	return appendOptRefs(buf, v.Addresses)
}

type Organization struct {
	Identification ifc.Optional[string]
	Name           string
	Description    ifc.Optional[string]
	Roles          ifc.Optional[[]ifc.Ref[*ActorRole]]
	Addresses      ifc.Optional[[]ifc.Ref[AnyAddress]]
}

func (*Organization) Keyword() string { return "IFCORGANIZATION" }

func (v *Organization) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.Identification, parseOptString),
		ifc.Field(&v.Name, ifc.ParseString),
		ifc.Field(&v.Description, parseOptString),
		ifc.Field(&v.Roles, parseOptRefs[*ActorRole]),
		ifc.Field(&v.Addresses, parseOptRefs[AnyAddress]),
	)
}

func (v *Organization) AppendAttrs(buf []byte) []byte {
	buf = comma(appendOptString(buf, v.Identification))
	buf = comma(ifc.AppendString(buf, v.Name))
	buf = comma(appendOptString(buf, v.Description))
	buf = comma(appendOptRefs(buf, v.Roles))
	return appendOptRefs(buf, v.Addresses)
}

type PersonAndOrganization struct {
	ThePerson       ifc.Ref[*Person]
	TheOrganization ifc.Ref[*Organization]
	Roles           ifc.Optional[[]ifc.Ref[*ActorRole]]
}

func (*PersonAndOrganization) Keyword() string { return "IFCPERSONANDORGANIZATION" }

func (v *PersonAndOrganization) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.ThePerson, ifc.ParseRef[*Person]),
		ifc.Field(&v.TheOrganization, ifc.ParseRef[*Organization]),
		ifc.Field(&v.Roles, parseOptRefs[*ActorRole]),
	)
}

func (v *PersonAndOrganization) AppendAttrs(buf []byte) []byte {
	buf = comma(ifc.AppendRef(buf, v.ThePerson))
	buf = comma(ifc.AppendRef(buf, v.TheOrganization))
	return appendOptRefs(buf, v.Roles)
}

type Application struct {
	ApplicationDeveloper  ifc.Ref[*Organization]
	Version               string
	ApplicationFullName   string
	ApplicationIdentifier string
}

func (*Application) Keyword() string { return "IFCAPPLICATION" }

func (v *Application) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.ApplicationDeveloper, ifc.ParseRef[*Organization]),
		ifc.Field(&v.Version, ifc.ParseString),
		ifc.Field(&v.ApplicationFullName, ifc.ParseString),
		ifc.Field(&v.ApplicationIdentifier, ifc.ParseString),
	)
}

func (v *Application) AppendAttrs(buf []byte) []byte {
	buf = comma(ifc.AppendRef(buf, v.ApplicationDeveloper))
	buf = comma(ifc.AppendString(buf, v.Version))
	buf = comma(ifc.AppendString(buf, v.ApplicationFullName))
	return ifc.AppendString(buf, v.ApplicationIdentifier)
}

// OwnerHistory carries ownership and change tracking. Dates are seconds
// since the Unix epoch (IfcTimeStamp).
type OwnerHistory struct {
	OwningUser               ifc.Ref[*PersonAndOrganization]
	OwningApplication        ifc.Ref[*Application]
	State                    ifc.Optional[AccessState]
	ChangeAction             ifc.Optional[ChangeAction]
	LastModifiedDate         ifc.Optional[int64]
	LastModifyingUser        ifc.Optional[ifc.Ref[*PersonAndOrganization]]
	LastModifyingApplication ifc.Optional[ifc.Ref[*Application]]
	CreationDate             int64
}

func (*OwnerHistory) Keyword() string { return "IFCOWNERHISTORY" }

func (v *OwnerHistory) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.OwningUser, ifc.ParseRef[*PersonAndOrganization]),
		ifc.Field(&v.OwningApplication, ifc.ParseRef[*Application]),
		ifc.Field(&v.State, parseOptEnum(AccessStates)),
		ifc.Field(&v.ChangeAction, parseOptEnum(ChangeActions)),
		ifc.Field(&v.LastModifiedDate, parseOptInteger),
		ifc.Field(&v.LastModifyingUser, parseOptRef[*PersonAndOrganization]),
		ifc.Field(&v.LastModifyingApplication, parseOptRef[*Application]),
		ifc.Field(&v.CreationDate, ifc.ParseInteger),
	)
}

func (v *OwnerHistory) AppendAttrs(buf []byte) []byte {
	buf = comma(ifc.AppendRef(buf, v.OwningUser))
	buf = comma(ifc.AppendRef(buf, v.OwningApplication))
	buf = comma(appendOptEnum(buf, AccessStates, v.State))
	buf = comma(appendOptEnum(buf, ChangeActions, v.ChangeAction))
	buf = comma(appendOptInteger(buf, v.LastModifiedDate))
	buf = comma(appendOptRef(buf, v.LastModifyingUser))
	buf = comma(appendOptRef(buf, v.LastModifyingApplication))
	return ifc.AppendInteger(buf, v.CreationDate)
}

type ActorRole struct {
	Role            Role
	UserDefinedRole ifc.Optional[string]
	Description     ifc.Optional[string]
}

func (*ActorRole) Keyword() string { return "IFCACTORROLE" }

func (v *ActorRole) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.Role, Roles.Parse),
		ifc.Field(&v.UserDefinedRole, parseOptString),
		ifc.Field(&v.Description, parseOptString),
	)
}

func (v *ActorRole) AppendAttrs(buf []byte) []byte {
	buf = comma(Roles.Append(buf, v.Role))
	buf = comma(appendOptString(buf, v.UserDefinedRole))
	return appendOptString(buf, v.Description)
}

// Address is the general part of postal and telecom addresses.
type Address struct {
	Purpose            ifc.Optional[AddressType]
	Description        ifc.Optional[string]
	UserDefinedPurpose ifc.Optional[string]
}

func (v *Address) AddressPart() *Address { return v }

func (v *Address) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.Purpose, parseOptEnum(AddressTypes)),
		ifc.Field(&v.Description, parseOptString),
		ifc.Field(&v.UserDefinedPurpose, parseOptString),
	)
}

func (v *Address) AppendAttrs(buf []byte) []byte {
	buf = comma(appendOptEnum(buf, AddressTypes, v.Purpose))
	buf = comma(appendOptString(buf, v.Description))
	return appendOptString(buf, v.UserDefinedPurpose)
}

type AnyAddress interface {
	ifc.Record
	AddressPart() *Address
}

type PostalAddress struct {
	Address
	InternalLocation ifc.Optional[string]
	AddressLines     ifc.Optional[[]string]
	PostalBox        ifc.Optional[string]
	Town             ifc.Optional[string]
	Region           ifc.Optional[string]
	PostalCode       ifc.Optional[string]
	Country          ifc.Optional[string]
}

func (*PostalAddress) Keyword() string { return "IFCPOSTALADDRESS" }

func (v *PostalAddress) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Address),
		ifc.Field(&v.InternalLocation, parseOptString),
		ifc.Field(&v.AddressLines, parseOptStrings),
		ifc.Field(&v.PostalBox, parseOptString),
		ifc.Field(&v.Town, parseOptString),
		ifc.Field(&v.Region, parseOptString),
		ifc.Field(&v.PostalCode, parseOptString),
		ifc.Field(&v.Country, parseOptString),
	)
}

func (v *PostalAddress) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Address.AppendAttrs(buf))
	buf = comma(appendOptString(buf, v.InternalLocation))
	buf = comma(appendOptStrings(buf, v.AddressLines))
	buf = comma(appendOptString(buf, v.PostalBox))
	buf = comma(appendOptString(buf, v.Town))
	buf = comma(appendOptString(buf, v.Region))
	buf = comma(appendOptString(buf, v.PostalCode))
	return appendOptString(buf, v.Country)
}

type TelecomAddress struct {
	Address
	TelephoneNumbers        ifc.Optional[[]string]
	FacsimileNumbers        ifc.Optional[[]string]
	PagerNumber             ifc.Optional[string]
	ElectronicMailAddresses ifc.Optional[[]string]
	WWWHomePageURL          ifc.Optional[string]
	MessagingIDs            ifc.Optional[[]string]
}

func (*TelecomAddress) Keyword() string { return "IFCTELECOMADDRESS" }

func (v *TelecomAddress) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Address),
		ifc.Field(&v.TelephoneNumbers, parseOptStrings),
		ifc.Field(&v.FacsimileNumbers, parseOptStrings),
		ifc.Field(&v.PagerNumber, parseOptString),
		ifc.Field(&v.ElectronicMailAddresses, parseOptStrings),
		ifc.Field(&v.WWWHomePageURL, parseOptString),
		ifc.Field(&v.MessagingIDs, parseOptStrings),
	)
}

func (v *TelecomAddress) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Address.AppendAttrs(buf))
	buf = comma(appendOptStrings(buf, v.TelephoneNumbers))
	buf = comma(appendOptStrings(buf, v.FacsimileNumbers))
	buf = comma(appendOptString(buf, v.PagerNumber))
	buf = comma(appendOptStrings(buf, v.ElectronicMailAddresses))
	buf = comma(appendOptString(buf, v.WWWHomePageURL))
	return appendOptStrings(buf, v.MessagingIDs)
}
