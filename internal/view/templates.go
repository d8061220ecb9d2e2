package view

// Page templates. Each page is a full document built from the head/foot
// partials; dashboard pages add the role-aware dashnav strip.

var pageSources = map[string]string{
	"head":               headTpl,
	"foot":               footTpl,
	"dashnav":            dashNavTpl,
	"upazila_select":     upazilaSelectTpl,
	"home":               homeTpl,
	"login":              loginTpl,
	"register":           registerTpl,
	"donors":             donorsTpl,
	"pending":            pendingTpl,
	"dashboard":          dashboardTpl,
	"profile":            profileTpl,
	"request_form":       requestFormTpl,
	"my_requests":        myRequestsTpl,
	"request_details":    requestDetailsTpl,
	"volunteer_requests": volunteerRequestsTpl,
	"admin_users":        adminUsersTpl,
	"admin_requests":     adminRequestsTpl,
	"funding":            fundingTpl,
}

const headTpl = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} · BloodLink</title>
<style>
body{font-family:system-ui,sans-serif;margin:0;color:#1e293b;background:#f8fafc}
nav{display:flex;gap:1rem;align-items:center;padding:.75rem 1.5rem;background:#b91c1c;color:#fff}
nav a{color:#fff;text-decoration:none}
nav .brand{font-weight:700;margin-right:auto}
main{max-width:64rem;margin:1.5rem auto;padding:0 1rem}
table{width:100%;border-collapse:collapse;background:#fff}
th,td{text-align:left;padding:.5rem;border-bottom:1px solid #e2e8f0;font-size:.875rem}
.badge{display:inline-block;padding:.1rem .5rem;border-radius:9999px;font-size:.75rem;border:1px solid transparent}
.badge-error{background:#fee2e2;color:#b91c1c}
.badge-warning{background:#fef3c7;color:#92400e}
.badge-info{background:#dbeafe;color:#1d4ed8}
.badge-success{background:#dcfce7;color:#15803d}
.badge-outline{border-color:#94a3b8;color:#475569}
.badge-ghost{background:#f1f5f9;color:#64748b}
.alert{padding:.75rem 1rem;border-radius:.5rem;background:#e0f2fe;color:#075985;margin-bottom:1rem}
.card{background:#fff;border:1px solid #e2e8f0;border-radius:.75rem;padding:1.25rem;margin-bottom:1rem}
.btn{display:inline-block;padding:.35rem .9rem;border-radius:.5rem;border:1px solid #cbd5e1;background:#fff;color:#1e293b;font-size:.875rem;cursor:pointer;text-decoration:none}
.btn-primary{background:#b91c1c;border-color:#b91c1c;color:#fff}
.btn-danger{color:#b91c1c;border-color:#b91c1c}
form.inline{display:inline}
label{display:block;font-size:.8rem;margin:.5rem 0 .15rem;color:#475569}
input,select,textarea{width:100%;box-sizing:border-box;padding:.4rem;border:1px solid #cbd5e1;border-radius:.4rem;font-size:.9rem}
.grid2{display:grid;grid-template-columns:1fr 1fr;gap:0 1rem}
.pager{display:flex;justify-content:space-between;align-items:center;margin-top:1rem;font-size:.85rem}
.dashnav{display:flex;flex-wrap:wrap;gap:.75rem;margin-bottom:1rem;font-size:.9rem}
.dashnav a{color:#b91c1c;text-decoration:none}
.muted{color:#64748b;font-size:.8rem}
</style>
</head>
<body>
<nav>
  <a class="brand" href="/">BloodLink</a>
  <a href="/requests">Requests</a>
  <a href="/search-donors">Find Donors</a>
  {{if .User}}
    <a href="/dashboard">Dashboard</a>
    <form class="inline" method="post" action="/logout"><button class="btn" type="submit">Logout</button></form>
  {{else}}
    <a href="/login">Login</a>
    <a href="/register">Register</a>
  {{end}}
</nav>
<main>
{{if .Flash}}<div class="alert">{{.Flash}}</div>{{end}}
{{if .Error}}<div class="alert">{{.Error}}</div>{{end}}`

const footTpl = `</main>
<script>
document.querySelectorAll("select[data-district-field]").forEach(function (upazila) {
  var district = document.querySelector('select[name="' + upazila.dataset.districtField + '"]');
  if (!district) return;
  var narrow = function () {
    upazila.querySelectorAll("optgroup").forEach(function (group) {
      group.hidden = district.value !== "" && group.label !== district.value;
    });
  };
  district.addEventListener("change", function () { upazila.value = ""; narrow(); });
  narrow();
});
</script>
</body>
</html>`

// upazilaSelectTpl renders every district's upazilas grouped by optgroup; the
// foot script narrows the list to the chosen district and clears the value
// when the district changes. Without script the full grouped list stays
// usable.
const upazilaSelectTpl = `<select name="{{.Name}}" data-district-field="{{.DistrictField}}">
<option value="">Select upazila</option>
{{range $d := districts}}<optgroup label="{{$d}}" data-district="{{$d}}">
{{range upazilas $d}}<option {{if and (eq $d $.District) (eq . $.Upazila)}}selected{{end}}>{{.}}</option>{{end}}
</optgroup>
{{end}}</select>`

const dashNavTpl = `<div class="dashnav">
  <a href="/dashboard">Overview</a>
  <a href="/dashboard/profile">Profile</a>
  <a href="/dashboard/requests/new">Create Request</a>
  <a href="/dashboard/my-requests">My Requests</a>
  <a href="/dashboard/funding">Funding</a>
  {{if .User.IsVolunteer}}<a href="/dashboard/volunteer/requests">Assigned Requests</a>{{end}}
  {{if .User.IsAdmin}}<a href="/dashboard/admin/users">All Users</a><a href="/dashboard/admin/requests">All Requests</a>{{end}}
</div>`

const homeTpl = `{{template "head" .}}
<div class="card">
  <h1>Donate blood, save a life</h1>
  <p>BloodLink connects blood donors with people who need them. Search donors
  near you or answer one of the open requests below.</p>
  <a class="btn btn-primary" href="/search-donors">Find a donor</a>
  <a class="btn" href="/requests">Browse requests</a>
  {{if not .User}}<a class="btn" href="/register">Join as a donor</a>{{end}}
</div>
<h2>Recent requests</h2>
{{if .Recent}}
<table>
<thead><tr><th>#</th><th>Recipient</th><th>Location</th><th>Blood</th><th>Date &amp; time</th><th>Status</th><th></th></tr></thead>
<tbody>
{{range $i, $r := .Recent}}
<tr>
  <td>{{add $i 1}}</td>
  <td>{{if $r.Recipient.Name}}{{$r.Recipient.Name}}{{else}}N/A{{end}}<div class="muted">{{if $r.HospitalName}}{{$r.HospitalName}}{{else}}N/A{{end}}</div></td>
  <td>{{location $r.Recipient.Upazila $r.Recipient.District}}</td>
  <td><span class="badge badge-outline">{{if $r.BloodGroup}}{{$r.BloodGroup}}{{else}}N/A{{end}}</span></td>
  <td>{{dateTime $r.DonationDate $r.DonationTime}}<div>{{with due $r.DonationDate}}<span class="badge {{.Badge}}">{{.Label}}</span>{{end}}</div></td>
  <td><span class="badge {{statusBadge $r.Status}}">{{$r.Status}}</span></td>
  <td><a class="btn" href="/dashboard/requests/{{$r.Key}}">View</a></td>
</tr>
{{end}}
</tbody>
</table>
{{else}}<p class="muted">No open requests right now.</p>{{end}}
{{template "foot" .}}`

const loginTpl = `{{template "head" .}}
<div class="card" style="max-width:26rem;margin:2rem auto">
<h2>Login</h2>
<form method="post" action="/login">
  <input type="hidden" name="from" value="{{.From}}">
  <label>Email</label>
  <input type="email" name="email" value="{{.Email}}" required>
  <label>Password</label>
  <input type="password" name="password" required>
  <div style="margin-top:1rem"><button class="btn btn-primary" type="submit">Login</button></div>
</form>
<p class="muted">New here? <a href="/register">Create an account</a></p>
</div>
{{template "foot" .}}`

const registerTpl = `{{template "head" .}}
<div class="card" style="max-width:34rem;margin:2rem auto">
<h2>Register as a donor</h2>
<form method="post" action="/register" enctype="multipart/form-data">
  <div class="grid2">
    <div><label>Name</label><input name="name" value="{{.Form.Name}}" required></div>
    <div><label>Email</label><input type="email" name="email" value="{{.Form.Email}}" required></div>
    <div><label>Password</label><input type="password" name="password" required></div>
    <div><label>Confirm password</label><input type="password" name="confirm_password" required></div>
    <div><label>Blood group</label>
      <select name="blood_group">{{range .BloodGroups}}<option {{if eq . $.Form.BloodGroup}}selected{{end}}>{{.}}</option>{{end}}</select>
    </div>
    <div><label>District</label>
      <select name="district" required><option value="">Select district</option>{{range .Districts}}<option {{if eq . $.Form.District}}selected{{end}}>{{.}}</option>{{end}}</select>
    </div>
    <div><label>Upazila</label>{{template "upazila_select" upazilaField "upazila" "district" .Form.District .Form.Upazila}}</div>
    <div><label>Avatar (optional)</label><input type="file" name="avatar_file" accept="image/*"></div>
  </div>
  <div style="margin-top:1rem"><button class="btn btn-primary" type="submit">Register</button></div>
</form>
</div>
{{template "foot" .}}`

const donorsTpl = `{{template "head" .}}
<h2>Search donors</h2>
<p class="muted">Filter donors by blood group, district and upazila. Only active donors appear.</p>
<div class="card">
<form method="get" action="/search-donors">
  <div class="grid2">
    <div><label>Blood group</label>
      <select name="bloodGroup"><option value="">Any</option>{{range .BloodGroups}}<option {{if eq . $.Filters.BloodGroup}}selected{{end}}>{{.}}</option>{{end}}</select>
    </div>
    <div><label>District</label>
      <select name="district"><option value="">Any</option>{{range .Districts}}<option {{if eq . $.Filters.District}}selected{{end}}>{{.}}</option>{{end}}</select>
    </div>
    <div><label>Upazila</label><input name="upazila" value="{{.Filters.Upazila}}"></div>
  </div>
  <div style="margin-top:1rem"><button class="btn btn-primary" type="submit">Search</button></div>
</form>
</div>
{{if .Searched}}
  {{if .Items}}
  <table>
  <thead><tr><th>#</th><th>Name</th><th>Blood</th><th>District</th><th>Upazila</th></tr></thead>
  <tbody>
  {{range $i, $d := .Items}}
  <tr>
    <td>{{add $.StartIndex (add $i 1)}}</td>
    <td>{{$d.Name}}</td>
    <td><span class="badge badge-outline">{{$d.BloodGroup}}</span></td>
    <td>{{$d.District}}</td>
    <td>{{$d.Upazila}}</td>
  </tr>
  {{end}}
  </tbody>
  </table>
  <div class="pager">
    {{if .Pager.HasPrev}}<a class="btn" href="{{.PageURL}}{{.Pager.Prev}}">Previous</a>{{else}}<span></span>{{end}}
    <span>Page {{.Pager.Page}} of {{.Pager.TotalPages}}</span>
    {{if .Pager.HasNext}}<a class="btn" href="{{.PageURL}}{{.Pager.Next}}">Next</a>{{else}}<span></span>{{end}}
  </div>
  {{else}}<p class="muted">No donors matched your filters.</p>{{end}}
{{end}}
{{template "foot" .}}`

const pendingTpl = `{{template "head" .}}
<h2>Open donation requests</h2>
<table>
<thead><tr><th>#</th><th>Recipient</th><th>Location</th><th>Blood</th><th>Date &amp; time</th><th>Status</th><th></th></tr></thead>
<tbody>
{{range $i, $r := .Items}}
<tr>
  <td>{{add $.StartIndex (add $i 1)}}</td>
  <td>{{if $r.Recipient.Name}}{{$r.Recipient.Name}}{{else}}N/A{{end}}<div class="muted">{{if $r.HospitalName}}{{$r.HospitalName}}{{else}}N/A{{end}}</div></td>
  <td>{{location $r.Recipient.Upazila $r.Recipient.District}}</td>
  <td><span class="badge badge-outline">{{if $r.BloodGroup}}{{$r.BloodGroup}}{{else}}N/A{{end}}</span></td>
  <td>{{dateTime $r.DonationDate $r.DonationTime}}<div>{{with due $r.DonationDate}}<span class="badge {{.Badge}}">{{.Label}}</span>{{end}}</div></td>
  <td><span class="badge {{statusBadge $r.Status}}">{{$r.Status}}</span></td>
  <td><a class="btn" href="/dashboard/requests/{{$r.Key}}">Details</a></td>
</tr>
{{end}}
</tbody>
</table>
{{if not .Items}}<p class="muted">No pending requests found.</p>{{end}}
<div class="pager">
  {{if .Pager.HasPrev}}<a class="btn" href="/requests?page={{.Pager.Prev}}">Previous</a>{{else}}<span></span>{{end}}
  <span>Page {{.Pager.Page}} of {{.Pager.TotalPages}}</span>
  {{if .Pager.HasNext}}<a class="btn" href="/requests?page={{.Pager.Next}}">Next</a>{{else}}<span></span>{{end}}
</div>
{{template "foot" .}}`

const dashboardTpl = `{{template "head" .}}
{{template "dashnav" .}}
<h2>Welcome back, {{.User.Name}}</h2>
{{if .Summary}}
<div class="grid2">
  <div class="card"><div class="muted">Total users</div><h3>{{.Summary.TotalUsers}}</h3></div>
  <div class="card"><div class="muted">Total requests</div><h3>{{.Summary.TotalRequests}}</h3></div>
  <div class="card"><div class="muted">Pending requests</div><h3>{{.Summary.PendingRequests}}</h3></div>
  <div class="card"><div class="muted">Total funds (BDT)</div><h3>{{.Summary.TotalFunds}}</h3></div>
</div>
{{end}}
{{if .Stats}}{{if .Stats.Daily}}
<div class="card">
<h3>Requests per day</h3>
<table><thead><tr><th>Date</th><th>Requests</th></tr></thead><tbody>
{{range .Stats.Daily}}<tr><td>{{.Date}}</td><td>{{.Count}}</td></tr>{{end}}
</tbody></table>
</div>
{{end}}{{end}}
<div class="card">
<h3>Your recent requests</h3>
{{if .Recent}}
<table>
<thead><tr><th>Recipient</th><th>Blood</th><th>Date</th><th>Status</th><th></th></tr></thead>
<tbody>
{{range .Recent}}
<tr>
  <td>{{.Recipient.Name}}</td>
  <td><span class="badge badge-outline">{{.BloodGroup}}</span></td>
  <td>{{dateShort .DonationDate}}</td>
  <td><span class="badge {{statusBadge .Status}}">{{.Status}}</span></td>
  <td><a class="btn" href="/dashboard/requests/{{.Key}}">View</a></td>
</tr>
{{end}}
</tbody>
</table>
{{else}}<p class="muted">You have not created any requests yet.</p>{{end}}
</div>
{{template "foot" .}}`

const profileTpl = `{{template "head" .}}
{{template "dashnav" .}}
<div class="card" style="max-width:34rem">
<h2>Your profile</h2>
<form method="post" action="/dashboard/profile" enctype="multipart/form-data">
  <div class="grid2">
    <div><label>Name</label><input name="name" value="{{.Form.Name}}" required></div>
    <div><label>Email</label><input value="{{.Form.Email}}" disabled></div>
    <div><label>Blood group</label>
      <select name="blood_group">{{range .BloodGroups}}<option {{if eq . $.Form.BloodGroup}}selected{{end}}>{{.}}</option>{{end}}</select>
    </div>
    <div><label>District</label>
      <select name="district"><option value="">Select district</option>{{range .Districts}}<option {{if eq . $.Form.District}}selected{{end}}>{{.}}</option>{{end}}</select>
    </div>
    <div><label>Upazila</label>{{template "upazila_select" upazilaField "upazila" "district" .Form.District .Form.Upazila}}</div>
    <div><label>Avatar</label><input type="file" name="avatar_file" accept="image/*">
      {{if .Form.AvatarURL}}<div class="muted">A new image replaces your current avatar.</div>{{end}}
    </div>
  </div>
  <p class="muted">Role: {{.Form.Role}} · Status: {{.Form.Status}}</p>
  <button class="btn btn-primary" type="submit">Save changes</button>
</form>
</div>
{{template "foot" .}}`

// requestFormTpl serves both create and edit; .Action and .Heading vary.
const requestFormTpl = `{{template "head" .}}
{{template "dashnav" .}}
<div class="card" style="max-width:40rem">
<h2>{{.Heading}}</h2>
<form method="post" action="{{.Action}}">
  <div class="grid2">
    <div><label>Recipient name</label><input name="recipient_name" value="{{.Form.Recipient.Name}}" required></div>
    <div><label>Blood group</label>
      <select name="blood_group">{{range .BloodGroups}}<option {{if eq . $.Form.BloodGroup}}selected{{end}}>{{.}}</option>{{end}}</select>
    </div>
    <div><label>Recipient district</label>
      <select name="recipient_district"><option value="">Select district</option>{{range .Districts}}<option {{if eq . $.Form.Recipient.District}}selected{{end}}>{{.}}</option>{{end}}</select>
    </div>
    <div><label>Recipient upazila</label>{{template "upazila_select" upazilaField "recipient_upazila" "recipient_district" .Form.Recipient.District .Form.Recipient.Upazila}}</div>
    <div><label>Hospital name</label><input name="hospital_name" value="{{.Form.HospitalName}}" required></div>
    <div><label>Full address</label><input name="full_address" value="{{.Form.FullAddress}}" required></div>
    <div><label>Donation date</label><input type="date" name="donation_date" value="{{.Form.DonationDate}}" required></div>
    <div><label>Donation time</label><input type="time" name="donation_time" value="{{.Form.DonationTime}}" required></div>
  </div>
  <label>Request message</label>
  <textarea name="request_message" rows="4">{{.Form.RequestMessage}}</textarea>
  <div style="margin-top:1rem"><button class="btn btn-primary" type="submit">{{.Heading}}</button></div>
</form>
</div>
{{template "foot" .}}`

const myRequestsTpl = `{{template "head" .}}
{{template "dashnav" .}}
<h2>My donation requests</h2>
<form method="get" action="/dashboard/my-requests">
  <label>Filter by status</label>
  <select name="status" onchange="this.form.submit()">
    <option value="">All</option>
    {{range .Statuses}}<option value="{{.}}" {{if eq (printf "%s" .) $.Status}}selected{{end}}>{{.}}</option>{{end}}
  </select>
  <noscript><button class="btn" type="submit">Apply</button></noscript>
</form>
{{if .Items}}
<table>
<thead><tr><th>#</th><th>Recipient</th><th>Location</th><th>Blood</th><th>Date &amp; time</th><th>Status</th><th>Actions</th></tr></thead>
<tbody>
{{range $i, $r := .Items}}
<tr>
  <td>{{add $.StartIndex (add $i 1)}}</td>
  <td>{{$r.Recipient.Name}}<div class="muted">{{$r.HospitalName}}</div></td>
  <td>{{location $r.Recipient.Upazila $r.Recipient.District}}</td>
  <td><span class="badge badge-outline">{{$r.BloodGroup}}</span></td>
  <td>{{dateTime $r.DonationDate $r.DonationTime}}<div>{{with due $r.DonationDate}}<span class="badge {{.Badge}}">{{.Label}}</span>{{end}}</div></td>
  <td><span class="badge {{statusBadge $r.Status}}">{{$r.Status}}</span></td>
  <td>
    <a class="btn" href="/dashboard/requests/{{$r.Key}}">View</a>
    {{$a := actions $r $.User}}
    {{if $a.CanEdit}}<a class="btn" href="/dashboard/requests/{{$r.Key}}/edit">Edit</a>{{end}}
    {{if $a.CanMarkDone}}<form class="inline" method="post" action="/dashboard/requests/{{$r.Key}}/status"><input type="hidden" name="status" value="done"><button class="btn" type="submit">Done</button></form>{{end}}
    {{if $a.CanCancel}}<form class="inline" method="post" action="/dashboard/requests/{{$r.Key}}/status"><input type="hidden" name="status" value="canceled"><button class="btn" type="submit">Cancel</button></form>{{end}}
    {{if $a.CanDelete}}<form class="inline" method="post" action="/dashboard/requests/{{$r.Key}}/delete"><button class="btn btn-danger" type="submit">Delete</button></form>{{end}}
  </td>
</tr>
{{end}}
</tbody>
</table>
<div class="pager">
  {{if .Pager.HasPrev}}<a class="btn" href="{{.PageURL}}{{.Pager.Prev}}">Previous</a>{{else}}<span></span>{{end}}
  <span>Page {{.Pager.Page}} of {{.Pager.TotalPages}}</span>
  {{if .Pager.HasNext}}<a class="btn" href="{{.PageURL}}{{.Pager.Next}}">Next</a>{{else}}<span></span>{{end}}
</div>
{{else}}<p class="muted">No donation requests found.</p>{{end}}
{{template "foot" .}}`

const requestDetailsTpl = `{{template "head" .}}
{{if .User}}{{template "dashnav" .}}{{end}}
<div class="card" style="max-width:40rem">
<h2>Donation request details <span class="badge {{statusBadge .Req.Status}}">{{.Req.Status}}</span></h2>
<p><b>Recipient:</b> {{if .Req.Recipient.Name}}{{.Req.Recipient.Name}}{{else}}N/A{{end}}</p>
<p><b>Blood group:</b> {{if .Req.BloodGroup}}{{.Req.BloodGroup}}{{else}}N/A{{end}}</p>
<p><b>Location:</b> {{location .Req.Recipient.Upazila .Req.Recipient.District}}</p>
<p><b>Hospital:</b> {{if .Req.HospitalName}}{{.Req.HospitalName}}{{else}}N/A{{end}}</p>
<p><b>Address:</b> {{if .Req.FullAddress}}{{.Req.FullAddress}}{{else}}N/A{{end}}</p>
<p><b>Donation time:</b> {{dateTime .Req.DonationDate .Req.DonationTime}}
  {{with due .Req.DonationDate}}<span class="badge {{.Badge}}">{{.Label}}</span>{{end}}</p>
{{if .Req.RequestMessage}}<p><b>Request message</b><br>{{.Req.RequestMessage}}</p>{{end}}
<p><b>Requested by:</b> {{if .Req.Requester.Name}}{{.Req.Requester.Name}}{{else}}N/A{{end}} <span class="muted">{{.Req.Requester.Email}}</span></p>
{{if .Req.Donor}}{{if .Req.Donor.User}}
<p><b>Assigned donor:</b> {{if .Req.Donor.Name}}{{.Req.Donor.Name}}{{else}}N/A{{end}} <span class="muted">{{.Req.Donor.Email}}</span></p>
{{end}}{{end}}
<div style="margin-top:1rem">
  {{if .Actions.CanDonate}}
  <form class="inline" method="post" action="/dashboard/requests/{{.Req.Key}}/donate"><button class="btn btn-primary" type="submit">Donate</button></form>
  {{end}}
  {{if .Actions.CanMarkDone}}
  <form class="inline" method="post" action="/dashboard/requests/{{.Req.Key}}/status"><input type="hidden" name="status" value="done"><button class="btn" type="submit">Mark as Done</button></form>
  {{end}}
  {{if .Actions.CanCancel}}
  <form class="inline" method="post" action="/dashboard/requests/{{.Req.Key}}/status"><input type="hidden" name="status" value="canceled"><button class="btn" type="submit">Cancel Request</button></form>
  {{end}}
  {{if .Actions.CanEdit}}<a class="btn" href="/dashboard/requests/{{.Req.Key}}/edit">Edit</a>{{end}}
  {{if .Actions.CanDelete}}
  <form class="inline" method="post" action="/dashboard/requests/{{.Req.Key}}/delete"><button class="btn btn-danger" type="submit">Delete</button></form>
  {{end}}
</div>
</div>
{{template "foot" .}}`

const volunteerRequestsTpl = `{{template "head" .}}
{{template "dashnav" .}}
<h2>Requests assigned to you</h2>
<form method="get" action="/dashboard/volunteer/requests">
  <label>Filter by status</label>
  <select name="status" onchange="this.form.submit()">
    <option value="">All</option>
    {{range .Statuses}}<option value="{{.}}" {{if eq (printf "%s" .) $.Status}}selected{{end}}>{{.}}</option>{{end}}
  </select>
  <noscript><button class="btn" type="submit">Apply</button></noscript>
</form>
{{if .Items}}
<table>
<thead><tr><th>#</th><th>Recipient</th><th>Location</th><th>Blood</th><th>Date &amp; time</th><th>Status</th><th>Actions</th></tr></thead>
<tbody>
{{range $i, $r := .Items}}
<tr>
  <td>{{add $.StartIndex (add $i 1)}}</td>
  <td>{{$r.Recipient.Name}}<div class="muted">{{$r.HospitalName}}</div></td>
  <td>{{location $r.Recipient.Upazila $r.Recipient.District}}</td>
  <td><span class="badge badge-outline">{{$r.BloodGroup}}</span></td>
  <td>{{dateTime $r.DonationDate $r.DonationTime}}</td>
  <td><span class="badge {{statusBadge $r.Status}}">{{$r.Status}}</span></td>
  <td>
    <a class="btn" href="/dashboard/requests/{{$r.Key}}">View</a>
    {{$a := actions $r $.User}}
    {{if $a.CanMarkDone}}<form class="inline" method="post" action="/dashboard/requests/{{$r.Key}}/status"><input type="hidden" name="status" value="done"><button class="btn" type="submit">Done</button></form>{{end}}
    {{if $a.CanCancel}}<form class="inline" method="post" action="/dashboard/requests/{{$r.Key}}/status"><input type="hidden" name="status" value="canceled"><button class="btn" type="submit">Cancel</button></form>{{end}}
  </td>
</tr>
{{end}}
</tbody>
</table>
<div class="pager">
  {{if .Pager.HasPrev}}<a class="btn" href="{{.PageURL}}{{.Pager.Prev}}">Previous</a>{{else}}<span></span>{{end}}
  <span>Page {{.Pager.Page}} of {{.Pager.TotalPages}}</span>
  {{if .Pager.HasNext}}<a class="btn" href="{{.PageURL}}{{.Pager.Next}}">Next</a>{{else}}<span></span>{{end}}
</div>
{{else}}<p class="muted">No requests assigned to you.</p>{{end}}
{{template "foot" .}}`

const adminUsersTpl = `{{template "head" .}}
{{template "dashnav" .}}
<h2>Manage users</h2>
<p class="muted">Block abusive accounts, assign roles, and keep the community safe.</p>
<form method="get" action="/dashboard/admin/users">
  <div class="grid2">
    <div><label>Role</label>
      <select name="role" onchange="this.form.submit()">
        <option value="">All</option>
        <option value="donor" {{if eq .Role "donor"}}selected{{end}}>donor</option>
        <option value="volunteer" {{if eq .Role "volunteer"}}selected{{end}}>volunteer</option>
        <option value="admin" {{if eq .Role "admin"}}selected{{end}}>admin</option>
      </select>
    </div>
    <div><label>Status</label>
      <select name="status" onchange="this.form.submit()">
        <option value="">All</option>
        <option value="active" {{if eq .Status "active"}}selected{{end}}>active</option>
        <option value="blocked" {{if eq .Status "blocked"}}selected{{end}}>blocked</option>
      </select>
    </div>
  </div>
  <noscript><button class="btn" type="submit">Apply</button></noscript>
</form>
{{if .Items}}
<table>
<thead><tr><th>#</th><th>Name</th><th>Email</th><th>Blood</th><th>Status</th><th>Role</th><th>Actions</th></tr></thead>
<tbody>
{{range $i, $u := .Items}}
<tr>
  <td>{{add $.StartIndex (add $i 1)}}</td>
  <td>{{$u.Name}}</td>
  <td>{{$u.Email}}</td>
  <td><span class="badge badge-outline">{{$u.BloodGroup}}</span></td>
  <td><span class="badge {{if eq $u.Status "active"}}badge-success{{else}}badge-error{{end}}">{{$u.Status}}</span></td>
  <td>{{$u.Role}}</td>
  <td>
    {{if eq $u.Status "active"}}
    <form class="inline" method="post" action="/dashboard/admin/users/{{$u.Key}}/block"><button class="btn btn-danger" type="submit">Block</button></form>
    {{else}}
    <form class="inline" method="post" action="/dashboard/admin/users/{{$u.Key}}/unblock"><button class="btn" type="submit">Unblock</button></form>
    {{end}}
    {{if ne $u.Role "volunteer"}}
    <form class="inline" method="post" action="/dashboard/admin/users/{{$u.Key}}/make-volunteer"><button class="btn" type="submit">Make volunteer</button></form>
    {{end}}
    {{if ne $u.Role "admin"}}
    <form class="inline" method="post" action="/dashboard/admin/users/{{$u.Key}}/make-admin"><button class="btn" type="submit">Make admin</button></form>
    {{end}}
  </td>
</tr>
{{end}}
</tbody>
</table>
<div class="pager">
  {{if .Pager.HasPrev}}<a class="btn" href="{{.PageURL}}{{.Pager.Prev}}">Previous</a>{{else}}<span></span>{{end}}
  <span>Page {{.Pager.Page}} of {{.Pager.TotalPages}}</span>
  {{if .Pager.HasNext}}<a class="btn" href="{{.PageURL}}{{.Pager.Next}}">Next</a>{{else}}<span></span>{{end}}
</div>
{{else}}<p class="muted">No users matched your filters.</p>{{end}}
{{template "foot" .}}`

const adminRequestsTpl = `{{template "head" .}}
{{template "dashnav" .}}
<h2>All donation requests</h2>
<form method="get" action="/dashboard/admin/requests">
  <label>Filter by status</label>
  <select name="status" onchange="this.form.submit()">
    <option value="">All</option>
    {{range .Statuses}}<option value="{{.}}" {{if eq (printf "%s" .) $.Status}}selected{{end}}>{{.}}</option>{{end}}
  </select>
  <noscript><button class="btn" type="submit">Apply</button></noscript>
</form>
{{if .Items}}
<table>
<thead><tr><th>#</th><th>Recipient</th><th>Requester</th><th>Blood</th><th>Date</th><th>Status</th><th>Actions</th></tr></thead>
<tbody>
{{range $i, $r := .Items}}
<tr>
  <td>{{add $.StartIndex (add $i 1)}}</td>
  <td>{{$r.Recipient.Name}}<div class="muted">{{$r.HospitalName}}</div></td>
  <td>{{$r.Requester.Name}}<div class="muted">{{$r.Requester.Email}}</div></td>
  <td><span class="badge badge-outline">{{$r.BloodGroup}}</span></td>
  <td>{{dateShort $r.DonationDate}}</td>
  <td><span class="badge {{statusBadge $r.Status}}">{{$r.Status}}</span></td>
  <td>
    <a class="btn" href="/dashboard/requests/{{$r.Key}}">View</a>
    {{$a := actions $r $.User}}
    {{if $a.CanMarkDone}}<form class="inline" method="post" action="/dashboard/requests/{{$r.Key}}/status"><input type="hidden" name="status" value="done"><button class="btn" type="submit">Done</button></form>{{end}}
    {{if $a.CanCancel}}<form class="inline" method="post" action="/dashboard/requests/{{$r.Key}}/status"><input type="hidden" name="status" value="canceled"><button class="btn" type="submit">Cancel</button></form>{{end}}
    {{if $a.CanDelete}}<form class="inline" method="post" action="/dashboard/requests/{{$r.Key}}/delete"><button class="btn btn-danger" type="submit">Delete</button></form>{{end}}
  </td>
</tr>
{{end}}
</tbody>
</table>
<div class="pager">
  {{if .Pager.HasPrev}}<a class="btn" href="{{.PageURL}}{{.Pager.Prev}}">Previous</a>{{else}}<span></span>{{end}}
  <span>Page {{.Pager.Page}} of {{.Pager.TotalPages}}</span>
  {{if .Pager.HasNext}}<a class="btn" href="{{.PageURL}}{{.Pager.Next}}">Next</a>{{else}}<span></span>{{end}}
</div>
{{else}}<p class="muted">No requests found.</p>{{end}}
{{template "foot" .}}`

const fundingTpl = `{{template "head" .}}
{{template "dashnav" .}}
<h2>Funding</h2>
<p class="muted">Contributions keep BloodLink running. Contributions shown below
total <b>{{.Total}} BDT</b>.</p>
<div class="card" style="max-width:26rem">
<h3>Contribute</h3>
<form method="post" action="/dashboard/funding">
  <label>Amount (BDT)</label>
  <input type="number" name="amount" min="1" value="{{.Amount}}" placeholder="Enter amount, e.g. 500" required>
  <div style="margin-top:1rem"><button class="btn btn-primary" type="submit">Continue to payment</button></div>
</form>
</div>
{{if .ClientSecret}}
<div class="card" style="max-width:26rem">
<h3>Complete payment — {{.Amount}} BDT</h3>
<form id="payment-form"><div id="payment-element"></div>
<button class="btn btn-primary" style="margin-top:1rem" type="submit">Pay {{.Amount}} BDT</button></form>
<script src="https://js.stripe.com/v3/"></script>
<script>
const stripe = Stripe({{.StripePK}});
const elements = stripe.elements({clientSecret: {{.ClientSecret}}});
elements.create("payment").mount("#payment-element");
document.getElementById("payment-form").addEventListener("submit", async (e) => {
  e.preventDefault();
  await stripe.confirmPayment({elements, confirmParams: {return_url: window.location.href}});
});
</script>
</div>
{{end}}
{{if .Items}}
<table>
<thead><tr><th>#</th><th>Contributor</th><th>Amount</th><th>Date</th></tr></thead>
<tbody>
{{range $i, $f := .Items}}
<tr>
  <td>{{add $.StartIndex (add $i 1)}}</td>
  <td>{{$f.ContributorName}}<div class="muted">{{if $f.User.Email}}{{$f.User.Email}}{{else}}{{$f.Email}}{{end}}</div></td>
  <td>{{$f.Amount}} BDT</td>
  <td>{{$f.CreatedAt}}</td>
</tr>
{{end}}
</tbody>
</table>
<div class="pager">
  {{if .Pager.HasPrev}}<a class="btn" href="{{.PageURL}}{{.Pager.Prev}}">Previous</a>{{else}}<span></span>{{end}}
  <span>Page {{.Pager.Page}} of {{.Pager.TotalPages}}</span>
  {{if .Pager.HasNext}}<a class="btn" href="{{.PageURL}}{{.Pager.Next}}">Next</a>{{else}}<span></span>{{end}}
</div>
{{else}}<p class="muted">No contributions yet.</p>{{end}}
{{template "foot" .}}`
